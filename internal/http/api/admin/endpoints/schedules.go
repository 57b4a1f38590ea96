package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
	"github.com/helioscast/helios/internal/push"
	"github.com/helioscast/helios/internal/webhook"
)

type ScheduleController struct {
	store    db.Store
	hooks    *webhook.Dispatcher
	notifier *push.Notifier
}

func ScheduleModule(store db.Store, hooks *webhook.Dispatcher, notifier *push.Notifier) api.Module {
	ctl := &ScheduleController{store: store, hooks: hooks, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PATCH("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)

		c.GET("/schedules/:id/assignments", ctl.listAssignments)
		c.POST("/schedules/:id/assignments", ctl.createAssignment)
		c.DELETE("/schedules/:id/assignments/:assignment_id", ctl.deleteAssignment)
	})
}

// parseDate accepts "2006-01-02" and returns the day at midnight UTC.
func parseDate(raw *string) (*time.Time, *api.APIError) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, want YYYY-MM-DD"}
	}
	return &parsed, nil
}

// checkClock rejects time-of-day strings that are not HH:MM or HH:MM:SS.
func checkClock(raw *string) *api.APIError {
	if raw == nil {
		return nil
	}
	if _, err := time.Parse("15:04:05", *raw); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04", *raw); err == nil {
		return nil
	}
	return &api.APIError{Code: http.StatusBadRequest, Message: "invalid time, want HH:MM or HH:MM:SS"}
}

func (s *ScheduleController) listSchedules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSchedules(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list schedules"}
	}
	return list, nil
}

func (s *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := s.store.GetLayoutByID(request.LayoutID, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	startDate, apiErr := parseDate(request.StartDate)
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, apiErr := parseDate(request.EndDate)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := checkClock(request.StartTime); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := checkClock(request.EndTime); apiErr != nil {
		return nil, apiErr
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end_date precedes start_date"}
	}

	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}

	created, err := s.store.CreateSchedule(model.Schedule{
		CustomerID: user.CustomerID,
		Name:       request.Name,
		LayoutID:   request.LayoutID,
		Priority:   request.Priority,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: request.DaysOfWeek,
		IsActive:   active,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}

	s.hooks.Emit(user.CustomerID, model.EventScheduleCreated, created)
	return created, nil
}

func (s *ScheduleController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	schedule, err := s.store.GetScheduleByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	return schedule, nil
}

func (s *ScheduleController) updateSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetScheduleByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.LayoutID != nil {
		if _, err := s.store.GetLayoutByID(*request.LayoutID, user.CustomerID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
		}
	}

	startDate, apiErr := parseDate(request.StartDate)
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, apiErr := parseDate(request.EndDate)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := checkClock(request.StartTime); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := checkClock(request.EndTime); apiErr != nil {
		return nil, apiErr
	}

	updated, err := s.store.UpdateSchedule(id, user.CustomerID, model.SchedulePatch{
		Name:       request.Name,
		LayoutID:   request.LayoutID,
		Priority:   request.Priority,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: request.DaysOfWeek,
		IsActive:   request.IsActive,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule"}
	}

	s.hooks.Emit(user.CustomerID, model.EventScheduleUpdated, updated)
	return updated, nil
}

func (s *ScheduleController) deleteSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetScheduleByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	if err := s.store.DeleteSchedule(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule"}
	}

	s.hooks.Emit(user.CustomerID, model.EventScheduleDeleted, gin.H{"schedule_id": id})
	return gin.H{"message": "deleted"}, nil
}

func (s *ScheduleController) listAssignments(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetScheduleByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	list, err := s.store.ListScheduleAssignments(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list assignments"}
	}
	return list, nil
}

// POST /api/v1/admin/schedules/:id/assignments
// Exactly one of target_customer_id, target_site_id, target_player_id must
// be set, and the target must belong to the caller's tenant.
func (s *ScheduleController) createAssignment(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetScheduleByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	targets := 0
	if request.TargetCustomerID != nil {
		targets++
	}
	if request.TargetSiteID != nil {
		targets++
	}
	if request.TargetPlayerID != nil {
		targets++
	}
	if targets != 1 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "exactly one target must be set"}
	}

	var pairedDeviceUID *string
	switch {
	case request.TargetCustomerID != nil:
		if *request.TargetCustomerID != user.CustomerID {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "customer not found"}
		}
	case request.TargetSiteID != nil:
		if _, err := s.store.GetSiteByID(*request.TargetSiteID, user.CustomerID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
		}
	case request.TargetPlayerID != nil:
		player, err := s.store.GetPlayerByID(*request.TargetPlayerID, user.CustomerID)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
		}
		if player.Paired {
			pairedDeviceUID = player.DeviceUID
		}
	}

	assignment, err := s.store.CreateScheduleAssignment(id, request.TargetCustomerID, request.TargetSiteID, request.TargetPlayerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create assignment"}
	}

	s.hooks.Emit(user.CustomerID, model.EventScheduleUpdated, gin.H{"schedule_id": id, "assignment_id": assignment.ID})
	if pairedDeviceUID != nil {
		s.notifier.NotifyRefresh(*pairedDeviceUID)
	}
	return assignment, nil
}

func (s *ScheduleController) deleteAssignment(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	assignmentID, apiErr := pathID(ctx, "assignment_id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetScheduleByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	if err := s.store.DeleteScheduleAssignment(assignmentID, id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete assignment"}
	}

	s.hooks.Emit(user.CustomerID, model.EventScheduleUpdated, gin.H{"schedule_id": id, "assignment_id": assignmentID, "removed": true})
	return gin.H{"message": "deleted"}, nil
}
