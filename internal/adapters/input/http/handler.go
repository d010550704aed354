package http

import (
	"errors"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/input"
	"textkit-client/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.SessionService
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.SessionService) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// Register func - Mounts the session routes
func (hdl *HTTPHandler) Register(app fiber.Router) {
	app.Get("/health", hdl.HealthCheck)

	v1 := app.Group("/v1")
	{
		v1.Get("/session", hdl.GetSession)
		v1.Get("/transforms", hdl.ListTransforms)
		v1.Post("/transform/:kind", hdl.Transform)
		v1.Post("/auth/signup", hdl.Signup)
		v1.Post("/auth/login", hdl.Login)
		v1.Post("/auth/logout", hdl.Logout)
		v1.Get("/history", hdl.GetHistory)
		v1.Delete("/history/:id", hdl.DeleteHistory)
		v1.Delete("/history", hdl.ClearHistory)
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetSession godoc
// @Summary Get session
// @Description Current session state; the token itself is never exposed
// @Tags SESSION
// @Produce json
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Router /v1/session [get]
func (hdl *HTTPHandler) GetSession(c *fiber.Ctx) error {
	return hdl.session(c)
}

// ListTransforms godoc
// @Summary List transformations
// @Description Supported transformation kinds with their labels
// @Tags TRANSFORM
// @Produce json
// @Success 200 {object} ResponseBody{data=[]TransformKindResponse}
// @Router /v1/transforms [get]
func (hdl *HTTPHandler) ListTransforms(c *fiber.Ctx) error {
	kinds := domain.TransformKinds()
	data := make([]TransformKindResponse, 0, len(kinds))
	for _, kind := range kinds {
		data = append(data, TransformKindResponse{
			Kind:        string(kind),
			Label:       kind.Label(),
			Description: kind.Description(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// Transform godoc
// @Summary Transform text
// @Description Runs one transformation; the outcome is recorded in the session
// @Tags TRANSFORM
// @Accept application/json
// @Produce json
// @param kind path string true "clean, slug, camel, snake, title or spell"
// @param Transform body TransformRequest true "Transform"
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Failure 400 {object} ResponseBody{data=SessionResponse}
// @Router /v1/transform/{kind} [post]
func (hdl *HTTPHandler) Transform(c *fiber.Ctx) error {
	var request TransformRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	raw := c.Params("kind")
	kind, ok := domain.ParseTransformKind(raw)
	if !ok {
		// Recorded by the session as an unknown transformation
		kind = domain.TransformKind(raw)
	}

	hdl.srv.RunAction(c.UserContext(), kind, request.Text)

	if !ok {
		state := hdl.srv.State()
		message := domain.MsgUnknownTransform
		if state.ErrorMessage != nil {
			message = *state.ErrorMessage
		}
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{
			Status: Status{Code: BadRequest.Code, Message: []string{message}},
			Data:   NewSessionResponse(state),
		})
	}
	return hdl.session(c)
}

// Signup godoc
// @Summary Sign up
// @Description Registers an account and logs into it
// @Tags AUTH
// @Accept application/json
// @Produce json
// @param Signup body CredentialsRequest true "Signup"
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Failure 400 {object} ResponseBody{data=SessionResponse}
// @Router /v1/auth/signup [post]
func (hdl *HTTPHandler) Signup(c *fiber.Ctx) error {
	request, err := hdl.credentials(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}
	if err := hdl.srv.AuthSignup(c.UserContext(), request.Username, request.Password); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.session(c)
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for a session token and loads history
// @Tags AUTH
// @Accept application/json
// @Produce json
// @param Login body CredentialsRequest true "Login"
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Failure 401 {object} ResponseBody{data=SessionResponse}
// @Router /v1/auth/login [post]
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	request, err := hdl.credentials(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}
	if err := hdl.srv.AuthLogin(c.UserContext(), request.Username, request.Password); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.session(c)
}

// Logout godoc
// @Summary Log out
// @Tags AUTH
// @Produce json
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Router /v1/auth/logout [post]
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	hdl.srv.Logout(c.UserContext())
	return hdl.session(c)
}

// GetHistory godoc
// @Summary Get history
// @Description Re-fetches the history of the logged in user
// @Tags HISTORY
// @Produce json
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Router /v1/history [get]
func (hdl *HTTPHandler) GetHistory(c *fiber.Ctx) error {
	hdl.srv.LoadHistory(c.UserContext())
	return hdl.session(c)
}

// DeleteHistory godoc
// @Summary Delete history item
// @Tags HISTORY
// @Produce json
// @param id path int true "history item id"
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Failure 404 {object} ResponseBody{data=SessionResponse}
// @Router /v1/history/{id} [delete]
func (hdl *HTTPHandler) DeleteHistory(c *fiber.Ctx) error {
	var params HistoryItemParams
	if err := c.ParamsParser(&params); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(params); err != nil {
		return hdl.badRequest(c, err)
	}
	if err := hdl.srv.RemoveHistory(c.UserContext(), params.ID); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.session(c)
}

// ClearHistory godoc
// @Summary Clear history
// @Tags HISTORY
// @Produce json
// @Success 200 {object} ResponseBody{data=SessionResponse}
// @Router /v1/history [delete]
func (hdl *HTTPHandler) ClearHistory(c *fiber.Ctx) error {
	if err := hdl.srv.ClearAllHistory(c.UserContext()); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.session(c)
}

func (hdl *HTTPHandler) credentials(c *fiber.Ctx) (CredentialsRequest, error) {
	var request CredentialsRequest
	if err := c.BodyParser(&request); err != nil {
		return request, err
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return request, err
	}
	return request, nil
}

func (hdl *HTTPHandler) session(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status: Success,
		Data:   NewSessionResponse(hdl.srv.State()),
	})
}

func (hdl *HTTPHandler) badRequest(c *fiber.Ctx, err error) error {
	logrus.Errorln(err)
	msg := ResponseBody{
		Status: Status{Code: BadRequest.Code},
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusBadRequest).JSON(msg)
}

// fail maps a returned session error onto the response status
func (hdl *HTTPHandler) fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	msg := ResponseBody{
		Status: status,
		Data:   NewSessionResponse(hdl.srv.State()),
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(status.Code).JSON(msg)
}

func errorStatus(err error) Status {
	if errors.Is(err, domain.ErrValidation) {
		return Status{Code: BadRequest.Code}
	}
	if code, ok := domain.StatusCode(err); ok && code >= 400 && code < 600 {
		return Status{Code: code}
	}
	logrus.Errorln(err)
	return Status{Code: BadGateway.Code}
}
