package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gamegestor/catalog-api/internal/api/metrics"
	"github.com/gamegestor/catalog-api/internal/core/ports"
	"github.com/gamegestor/catalog-api/internal/core/validation"
	"github.com/gamegestor/catalog-api/internal/infrastructure/upload"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
	uploads *upload.Store
}

func NewUserHandler(service ports.UserService, uploads *upload.Store) *UserHandler {
	return &UserHandler{service: service, uploads: uploads}
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuarios [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValidated(c, validation.UserRules(), &req); err != nil {
		return err
	}

	user, token, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		User: registeredUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Phone:    user.Phone,
			Role:     user.Role,
		},
		Token: token,
	})
}

// Login authenticates a user and returns a session token. Login bodies skip
// the validation pipeline on purpose: bad credentials of any shape come back
// as a plain 401.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /usuarios/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// List returns all users (password hashes never serialize).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  object
// @Failure      404       {object}  map[string]string
// @Router       /usuarios/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update patches a user's profile. Accepts JSON or multipart form data; a
// "profilePicture" file part, when present, is stored first and its path
// joins the patch.
//
// @Summary      Update a user
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        username        path      string  true   "Username"
// @Param        profilePicture  formData  file    false  "Profile picture (jpeg/jpg/png, max 5MB)"
// @Success      200  {object}  object
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	patch, err := h.buildPatch(c)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("username"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) buildPatch(c echo.Context) (ports.UserPatch, error) {
	var patch ports.UserPatch

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		form, err := c.FormParams()
		if err != nil {
			return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		patch.FirstName = formField(form, "nombre")
		patch.LastName = formField(form, "apellido")
		patch.Email = formField(form, "email")
		patch.Phone = formField(form, "telefono")

		if fh, err := c.FormFile("profilePicture"); err == nil {
			path, err := h.uploads.Save(fh)
			if err != nil {
				if err == upload.ErrNotAnImage || err == upload.ErrFileTooLarge {
					return patch, echo.NewHTTPError(http.StatusBadRequest, err.Error())
				}
				return patch, err
			}
			metrics.UploadsTotal.Inc()
			patch.ProfilePicture = &path
		}
		return patch, nil
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	patch.FirstName = req.FirstName
	patch.LastName = req.LastName
	patch.Email = req.Email
	patch.Phone = req.Phone
	return patch, nil
}

func formField(form map[string][]string, name string) *string {
	if vs, ok := form[name]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

// Delete removes a user. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /usuarios/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
