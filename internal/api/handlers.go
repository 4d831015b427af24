package api

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/internal/service"
	"github.com/limbo/myniu/pkg/entity"
	"github.com/limbo/myniu/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateTrainingRequest is the wire shape of a session submission.
// Older clients sent "dt" as "YYYY-MM-DD HH:MM", newer ones RFC 3339;
// both are normalized here, at the boundary, into the canonical entity.
type CreateTrainingRequest struct {
	DT             string  `json:"dt"`
	DurationMin    int     `json:"duration_min"`
	Calories       int     `json:"calories"`
	AvgHeartRate   int     `json:"avg_hr"`
	MaxHeartRate   int     `json:"max_hr"`
	TrainingEffect float64 `json:"training_effect"`
	Notes          string  `json:"notes"`
}

type UpsertDailyLogRequest struct {
	ReadingMinutes  *int  `json:"reading_minutes"`
	WaterGlasses    *int  `json:"water_glasses"`
	KefirGlasses    *int  `json:"kefir_glasses"`
	NoPhoneAfter21  *bool `json:"no_phone_after_21"`
	DisciplineScore *int  `json:"discipline_score"`
	MoodScore       *int  `json:"mood_score"`
	CalorieIntake   *int  `json:"calorie_intake"`
}

type QuickLogRequest struct {
	Glasses  int   `json:"glasses"`
	Servings int   `json:"servings"`
	Minutes  int   `json:"minutes"`
	Success  *bool `json:"success"`
}

type ListTrainingsResponse struct {
	UserID    string                   `json:"uid"`
	Page      int                      `json:"page"`
	Limit     int                      `json:"limit"`
	Trainings []entity.TrainingSession `json:"trainings"`
}

type ExtractRequest struct {
	Image string `json:"image"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("registering error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid credentials format", err)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	logger.Info("account deleted")
}

func (s *Server) CreateTraining(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create training error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTrainingRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create training error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	startedAt, err := parseTrainingTime(req.DT)
	if err != nil {
		logger.Error("create training error: invalid dt format")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid dt format", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	training, err := s.trainingsService.CreateTraining(ctx, uid, &service.CreateTrainingRequest{
		StartedAt:      startedAt,
		DurationMin:    req.DurationMin,
		Calories:       req.Calories,
		AvgHeartRate:   req.AvgHeartRate,
		MaxHeartRate:   req.MaxHeartRate,
		TrainingEffect: req.TrainingEffect,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create training error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid training fields", err)
		case errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("create training error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "training date in the future", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create training error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create training: user doesn't exists", nil)
		default:
			logger.Error("create training error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating training", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, training)
	logger.Info("training created")
}

func (s *Server) ListTrainings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list trainings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	trainings, err := s.trainingsService.ListTrainings(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("listing trainings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting trainings list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListTrainingsResponse{
		UserID:    uid.String(),
		Page:      page,
		Limit:     limit,
		Trainings: trainings,
	})
	logger.Info("trainings provided")
}

func (s *Server) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("training deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("training deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid training id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.trainingsService.DeleteTraining(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTrainingNotFound):
			logger.Error("training deletion error: unexist training")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "training doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("training deletion error: training has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "training doesn't exist", nil)
		default:
			logger.Error("training deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting training", nil)
		}
		return
	}
	logger.Info("training deleted")
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	dashboard, err := s.dashboardService.GetDashboard(ctx, uid, time.Now())
	if err != nil {
		logger.Error("dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building dashboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("dashboard provided")
}

func (s *Server) ListDailyLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list daily logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	logs, err := s.dailyLogsService.ListLogs(ctx, uid)
	if err != nil {
		logger.Error("listing daily logs error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting daily logs", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":  uid.String(),
		"logs": logs,
	})
	logger.Info("daily logs provided")
}

func (s *Server) GetDayDetail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day detail error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		logger.Error("day detail error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	detail, err := s.dashboardService.GetDayDetail(ctx, uid, date)
	if err != nil {
		logger.Error("day detail error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting day detail", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, detail)
	logger.Info("day detail provided")
}

func (s *Server) UpsertDailyLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily log upsert error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		logger.Error("daily log upsert error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
		return
	}
	var req UpsertDailyLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("daily log upsert error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	updated, err := s.dailyLogsService.UpsertLog(ctx, uid, date, &service.LogPatchRequest{
		ReadingMinutes:  req.ReadingMinutes,
		WaterGlasses:    req.WaterGlasses,
		KefirGlasses:    req.KefirGlasses,
		NoPhoneAfter21:  req.NoPhoneAfter21,
		DisciplineScore: req.DisciplineScore,
		MoodScore:       req.MoodScore,
		CalorieIntake:   req.CalorieIntake,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("daily log upsert error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid daily log fields", err)
		case errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("daily log upsert error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "logging a future date is not allowed", nil)
		default:
			logger.Error("daily log upsert error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving daily log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("daily log saved")
}

func (s *Server) AddWater(w http.ResponseWriter, r *http.Request) {
	s.quickLog(w, r, func(ctx context.Context, uid uuid.UUID, req *QuickLogRequest) (*entity.DailyLog, error) {
		glasses := req.Glasses
		if glasses <= 0 {
			glasses = 1
		}
		return s.dailyLogsService.AddWater(ctx, uid, time.Now(), glasses)
	})
}

func (s *Server) AddKefir(w http.ResponseWriter, r *http.Request) {
	s.quickLog(w, r, func(ctx context.Context, uid uuid.UUID, req *QuickLogRequest) (*entity.DailyLog, error) {
		servings := req.Servings
		if servings <= 0 {
			servings = 1
		}
		return s.dailyLogsService.AddKefir(ctx, uid, time.Now(), servings)
	})
}

func (s *Server) LogReading(w http.ResponseWriter, r *http.Request) {
	s.quickLog(w, r, func(ctx context.Context, uid uuid.UUID, req *QuickLogRequest) (*entity.DailyLog, error) {
		if req.Minutes <= 0 {
			return nil, errorvalues.ErrValidation
		}
		return s.dailyLogsService.LogReading(ctx, uid, time.Now(), req.Minutes)
	})
}

func (s *Server) LogNoPhone(w http.ResponseWriter, r *http.Request) {
	s.quickLog(w, r, func(ctx context.Context, uid uuid.UUID, req *QuickLogRequest) (*entity.DailyLog, error) {
		success := true
		if req.Success != nil {
			success = *req.Success
		}
		return s.dailyLogsService.LogNoPhone(ctx, uid, time.Now(), success)
	})
}

// quickLog factors the shared shape of the four dashboard one-tap
// endpoints: decode a small body, apply, return the fresh log.
func (s *Server) quickLog(w http.ResponseWriter, r *http.Request, apply func(context.Context, uuid.UUID, *QuickLogRequest) (*entity.DailyLog, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quick log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req QuickLogRequest
	defer r.Body.Close()
	// Empty body is fine, all fields have defaults
	_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	updated, err := apply(ctx, uid, &req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("quick log error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid quick log fields", nil)
			return
		}
		logger.Error("quick log error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving quick log", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, updated)
	logger.Info("quick log saved")
}

func (s *Server) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2200 {
		logger.Error("calendar error: invalid year in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		logger.Error("calendar error: invalid month in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.dashboardService.GetCalendarMonth(ctx, uid, year, time.Month(month))
	if err != nil {
		logger.Error("calendar error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": month,
		"days":  days,
	})
	logger.Info("calendar provided")
}

func (s *Server) GetCharts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("charts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	charts, err := s.dashboardService.GetCharts(ctx, uid, time.Now())
	if err != nil {
		logger.Error("charts error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building charts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, charts)
	logger.Info("charts provided")
}

func (s *Server) ExtractTraining(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if _, err := GetUIDFromContext(r); err != nil {
		logger.Error("extract error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ExtractRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Image == "" {
		logger.Error("extract error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Data-URL prefixes from browser uploads get stripped here
	if idx := strings.Index(req.Image, ","); idx != -1 && strings.HasPrefix(req.Image, "data:") {
		req.Image = req.Image[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		logger.Error("extract error: invalid base64 image")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid base64 image", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	draft, err := s.extractor.ExtractTraining(ctx, image)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExtractUnavailable) {
			logger.Error("extract error: upstream unavailable")
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "extraction service unavailable", nil)
			return
		}
		logger.Error("extract error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while extracting training data", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, draft)
	logger.Info("training draft extracted")
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseTrainingTime(dt string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04", dt)
}
