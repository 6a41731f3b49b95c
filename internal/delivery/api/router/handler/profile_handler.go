package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"profile/internal/delivery/api/response"
	"profile/internal/delivery/api/validator"
	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPageSize = 20

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile routes of every kind. Each method returns
// the echo handler bound to one kind.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// List returns every active profile, or one page when page or size is given.
func (h *ProfileHandler) List(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		pageParam, sizeParam := c.QueryParam("page"), c.QueryParam("size")

		if pageParam == "" && sizeParam == "" {
			profiles, err := h.profileUC.GetProfilesByType(ctx, kind.String())
			if err != nil {
				return response.HandleAppError(c, err)
			}

			return response.Success(c, http.StatusOK, toProfileResponses(profiles))
		}

		page, size, err := parsePaging(pageParam, sizeParam)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		result, err := h.profileUC.GetProfilesWithPagination(ctx, kind.String(), page, size)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toPageResponse(result))
	}
}

// Get returns one active profile by id.
func (h *ProfileHandler) Get(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		profile, err := h.profileUC.GetProfileByID(c.Request().Context(), kind.String(), id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toProfileResponse(profile))
	}
}

// GetIDByEmail returns only the id of the active profile holding the email.
func (h *ProfileHandler) GetIDByEmail(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := h.profileUC.GetProfileByEmailAddress(c.Request().Context(), c.Param("email"), kind.String())
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]string{
			identityField(kind): profile.Base().ID.String(),
		})
	}
}

// Register creates a profile of the route's kind.
func (h *ProfileHandler) Register(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, ok, err := bindProfileRequest(c)
		if !ok {
			return err
		}

		created, err := h.profileUC.CreateProfile(c.Request().Context(), req.toEntity(kind))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toProfileResponse(created))
	}
}

// Update replaces the mutable fields of the profile at :id.
func (h *ProfileHandler) Update(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		req, ok, err := bindProfileRequest(c)
		if !ok {
			return err
		}

		updated, err := h.profileUC.UpdateProfile(c.Request().Context(), id, req.toEntity(kind))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toProfileResponse(updated))
	}
}

// Delete soft-deletes the profile at :id.
func (h *ProfileHandler) Delete(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.profileUC.DeleteProfile(c.Request().Context(), id, kind); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted successfully"})
	}
}

// Blacklist sets the blacklist gate on the profile at :id.
func (h *ProfileHandler) Blacklist(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.profileUC.BlacklistProfile(c.Request().Context(), id, kind); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]string{"message": "Profile blacklisted successfully"})
	}
}

// Unblacklist clears the blacklist gate on the profile at :id.
func (h *ProfileHandler) Unblacklist(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.profileUC.UnblacklistProfile(c.Request().Context(), id, kind); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]string{"message": "Profile removed from blacklist successfully"})
	}
}

// bindProfileRequest binds and validates the body. When ok is false the error
// response has been written and err is the result of writing it.
func bindProfileRequest(c echo.Context) (req *ProfileRequest, ok bool, err error) {
	req = new(ProfileRequest)
	if err := c.Bind(req); err != nil {
		return nil, false, response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(req); err != nil {
		return nil, false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.Details(err),
		)
	}

	return req, true, nil
}

// parseID reads :id. A malformed id cannot name a profile, so it is reported
// the same way as a missing one.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidProfileID.WithDetails("malformed id")
	}

	return id, nil
}

func parsePaging(pageParam, sizeParam string) (int, int, error) {
	page, size := 0, defaultPageSize

	var err error
	if pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, domainerrors.ErrInvalidPagination.WithDetails("page is not a number")
		}
	}
	if sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, domainerrors.ErrInvalidPagination.WithDetails("size is not a number")
		}
	}

	return page, size, nil
}
