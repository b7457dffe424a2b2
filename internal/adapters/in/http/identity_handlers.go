package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Registration godoc
//
//	@Summary	Register a customer or business account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registrationPayload	true	"Account"
//	@Success	201		{object}	authView
//	@Failure	400		{object}	map[string][]string
//	@Router		/api/registration/ [post]
func (s *Server) Registration(c echo.Context) error {
	var payload registrationPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		payload.Username,
		payload.Email,
		payload.Password,
		payload.RepeatedPassword,
		payload.Type,
	)
	if err != nil {
		return err
	}

	if err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	token, err := s.tokens.Issue(cmd.UserID())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authView{
		Token:    token,
		Username: cmd.Username(),
		Email:    cmd.Email(),
		UserID:   cmd.UserID().String(),
	})
}

// Login godoc
//
//	@Summary	Exchange username and password for an access token
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		loginPayload	true	"Credentials"
//	@Success	200		{object}	authView
//	@Failure	400		{object}	map[string][]string
//	@Router		/api/login/ [post]
func (s *Server) Login(c echo.Context) error {
	var payload loginPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateQuery(payload.Username, payload.Password)
	if err != nil {
		return err
	}

	user, err := s.handlers.Authenticate.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authView{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.UserID.String(),
	})
}

// GetProfile godoc
//
//	@Summary	Retrieve a profile
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	profileView
//	@Failure	401	{object}	detailBody
//	@Failure	404	{object}	detailBody
//	@Router		/api/profile/{id}/ [get]
func (s *Server) GetProfile(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceProfile, services.ActionRetrieve)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id", "profile")
	if err != nil {
		return err
	}

	return s.renderProfile(c, actor, userID)
}

// PatchProfile godoc
//
//	@Summary	Update the caller's own profile
//	@Tags		Profiles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"User id"
//	@Param		body	body		profilePatchPayload	true	"Fields to change"
//	@Success	200		{object}	profileView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Router		/api/profile/{id}/ [patch]
func (s *Server) PatchProfile(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceProfile, services.ActionUpdate)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id", "profile")
	if err != nil {
		return err
	}

	var payload profilePatchPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(actor, userID, payload.patch())
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderProfile(c, actor, userID)
}

func (s *Server) renderProfile(c echo.Context, actor identity.Actor, userID kernel.UUID) error {
	query, err := queries.NewGetProfileQuery(actor, userID)
	if err != nil {
		return err
	}

	profile, err := s.handlers.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProfileView(profile, profileFull))
}

// ListBusinessProfiles godoc
//
//	@Summary	List business profiles
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		profileView
//	@Failure	401	{object}	detailBody
//	@Router		/api/profiles/business/ [get]
func (s *Server) ListBusinessProfiles(c echo.Context) error {
	return s.listProfiles(c, identity.RoleBusiness, profileBusinessList)
}

// ListCustomerProfiles godoc
//
//	@Summary	List customer profiles
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		profileView
//	@Failure	401	{object}	detailBody
//	@Router		/api/profiles/customer/ [get]
func (s *Server) ListCustomerProfiles(c echo.Context) error {
	return s.listProfiles(c, identity.RoleCustomer, profileCustomerList)
}

func (s *Server) listProfiles(c echo.Context, role identity.Role, kind profileKind) error {
	actor, err := s.authorize(c, services.ResourceProfile, services.ActionList)
	if err != nil {
		return err
	}

	query, err := queries.NewListProfilesQuery(actor, role)
	if err != nil {
		return err
	}

	profiles, err := s.handlers.ListProfiles.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]profileView, len(profiles))
	for i, p := range profiles {
		views[i] = newProfileView(p, kind)
	}
	return c.JSON(http.StatusOK, views)
}
