package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

const scheduleColumns = `
	id, customer_id, name, layout_id, priority, start_date, end_date,
	start_time, end_time, days_of_week, is_active, created_at, updated_at`

func (s *pgStore) CreateSchedule(sc model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	const q = `
	INSERT INTO schedules
	  (customer_id, name, layout_id, priority, start_date, end_date,
	   start_time, end_time, days_of_week, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
	RETURNING ` + scheduleColumns + `;`
	if err := s.db.Get(&out, q,
		sc.CustomerID, sc.Name, sc.LayoutID, sc.Priority,
		sc.StartDate, sc.EndDate, sc.StartTime, sc.EndTime,
		sc.DaysOfWeek, sc.IsActive,
	); err != nil {
		log.Error().Err(err).Msg("CreateSchedule failed")
		return model.Schedule{}, err
	}
	return out, nil
}

func (s *pgStore) GetScheduleByID(id, customerID int) (model.Schedule, error) {
	var sc model.Schedule
	const q = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&sc, q, id, customerID); err != nil {
		return model.Schedule{}, notFound(err)
	}
	return sc, nil
}

func (s *pgStore) ListSchedules(customerID int) ([]model.Schedule, error) {
	var out []model.Schedule
	const q = `SELECT ` + scheduleColumns + ` FROM schedules WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListSchedules failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateSchedule(id, customerID int, patch model.SchedulePatch) (model.Schedule, error) {
	var out model.Schedule
	const q = `
	UPDATE schedules
	   SET name         = COALESCE($3, name),
	       layout_id    = COALESCE($4, layout_id),
	       priority     = COALESCE($5, priority),
	       start_date   = COALESCE($6, start_date),
	       end_date     = COALESCE($7, end_date),
	       start_time   = COALESCE($8, start_time),
	       end_time     = COALESCE($9, end_time),
	       days_of_week = COALESCE($10, days_of_week),
	       is_active    = COALESCE($11, is_active),
	       updated_at   = now()
	 WHERE id = $1 AND customer_id = $2
	RETURNING ` + scheduleColumns + `;`
	if err := s.db.Get(&out, q, id, customerID,
		patch.Name, patch.LayoutID, patch.Priority,
		patch.StartDate, patch.EndDate, patch.StartTime, patch.EndTime,
		patch.DaysOfWeek, patch.IsActive,
	); err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("UpdateSchedule failed")
		return model.Schedule{}, notFound(err)
	}
	return out, nil
}

// DeleteSchedule removes a schedule; its assignments go with it via the
// ON DELETE CASCADE on schedule_assignments.
func (s *pgStore) DeleteSchedule(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM schedules WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("DeleteSchedule failed")
	}
	return err
}

func (s *pgStore) CreateScheduleAssignment(scheduleID int, targetCustomerID, targetSiteID, targetPlayerID *int) (model.ScheduleAssignment, error) {
	var a model.ScheduleAssignment
	const q = `
	INSERT INTO schedule_assignments
	  (schedule_id, target_customer_id, target_site_id, target_player_id, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, schedule_id, target_customer_id, target_site_id, target_player_id, created_at;`
	if err := s.db.Get(&a, q, scheduleID, targetCustomerID, targetSiteID, targetPlayerID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("CreateScheduleAssignment failed")
		return model.ScheduleAssignment{}, err
	}
	return a, nil
}

func (s *pgStore) ListScheduleAssignments(scheduleID int) ([]model.ScheduleAssignment, error) {
	var out []model.ScheduleAssignment
	const q = `
	SELECT id, schedule_id, target_customer_id, target_site_id, target_player_id, created_at
	  FROM schedule_assignments
	 WHERE schedule_id = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, scheduleID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("ListScheduleAssignments failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteScheduleAssignment(id, scheduleID int) error {
	_, err := s.db.Exec(`DELETE FROM schedule_assignments WHERE id = $1 AND schedule_id = $2;`, id, scheduleID)
	if err != nil {
		log.Error().Err(err).Int("assignment_id", id).Msg("DeleteScheduleAssignment failed")
	}
	return err
}

// CandidateSchedulesForPlayer joins schedules to a player across all three
// assignment scopes in one query, tagging each row with its scope tier
// (player=0, site=1, customer=2). Inactive schedules are filtered here so
// they never reach the resolver; fine-grained temporal filtering stays in
// Go where it is testable.
func (s *pgStore) CandidateSchedulesForPlayer(playerID int) ([]model.ScheduleCandidate, error) {
	var out []model.ScheduleCandidate
	const q = `
	SELECT sc.id, sc.customer_id, sc.name, sc.layout_id, sc.priority,
	       sc.start_date, sc.end_date, sc.start_time, sc.end_time,
	       sc.days_of_week, sc.is_active, sc.created_at, sc.updated_at,
	       CASE
	         WHEN a.target_player_id IS NOT NULL THEN 0
	         WHEN a.target_site_id   IS NOT NULL THEN 1
	         ELSE 2
	       END AS scope_tier
	  FROM players p
	  JOIN schedule_assignments a
	    ON a.target_player_id = p.id
	    OR a.target_site_id   = p.site_id
	    OR a.target_customer_id = p.customer_id
	  JOIN schedules sc ON sc.id = a.schedule_id
	 WHERE p.id = $1
	   AND sc.is_active = true;`
	if err := s.db.Select(&out, q, playerID); err != nil {
		log.Error().Err(err).Int("player_id", playerID).Msg("CandidateSchedulesForPlayer failed")
		return nil, err
	}
	return out, nil
}
