package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the tables and then applies the schema objects AutoMigrate
// cannot express: views over the session data and the triggers that backstop
// the scheduler's invariants.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Member{},
		&Trainer{},
		&TrainerAvailability{},
		&AdminStaff{},
		&Room{},
		&TrainingSession{},
		&HealthMetric{},
		&FitnessGoal{},
		&MaintenanceIssue{},
		&Invoice{},
		&InvoiceItem{},
		&NotificationLog{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	for _, ddl := range schemaDDL {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("schema DDL failed: %w", err)
		}
	}
	return nil
}

var schemaDDL = []string{
	// Upcoming sessions with trainer, member and room context. A plain view, so
	// it always reflects committed session state.
	`CREATE OR REPLACE VIEW trainer_schedule_view AS
	SELECT
		t.id AS trainer_id,
		t.first_name || ' ' || t.last_name AS trainer_name,
		s.id AS session_id,
		s.start_time,
		s.end_time,
		s.session_type,
		m.first_name || ' ' || m.last_name AS member_name,
		r.room_number
	FROM trainers t
	JOIN training_sessions s ON s.trainer_id = t.id
	LEFT JOIN members m ON m.id = s.member_id
	LEFT JOIN rooms r ON r.id = s.room_id
	WHERE s.start_time >= now()
	  AND t.deleted_at IS NULL
	ORDER BY s.start_time;`,

	// Per-member rollup: latest metric, current goal, session counts.
	`CREATE OR REPLACE VIEW member_dashboard_view AS
	SELECT
		m.id AS member_id,
		m.first_name,
		m.last_name,
		m.email,
		m.membership_status,
		(SELECT h.weight_kg FROM health_metrics h
			WHERE h.member_id = m.id
			ORDER BY h.recorded_at DESC LIMIT 1) AS latest_weight_kg,
		(SELECT h.recorded_at FROM health_metrics h
			WHERE h.member_id = m.id
			ORDER BY h.recorded_at DESC LIMIT 1) AS latest_metric_at,
		(SELECT g.goal_type FROM fitness_goals g
			WHERE g.member_id = m.id
			ORDER BY g.set_date DESC LIMIT 1) AS current_goal,
		(SELECT COUNT(*) FROM training_sessions s
			WHERE s.member_id = m.id AND s.end_time < now()) AS past_session_count,
		(SELECT COUNT(*) FROM training_sessions s
			WHERE s.member_id = m.id AND s.end_time >= now()) AS upcoming_session_count
	FROM members m
	WHERE m.deleted_at IS NULL;`,

	// Room occupancy rollup used by the admin dashboard.
	`CREATE OR REPLACE VIEW room_occupancy_view AS
	SELECT
		r.id AS room_id,
		r.room_number,
		r.room_type,
		r.capacity,
		COUNT(s.id) FILTER (WHERE s.end_time >= now()) AS upcoming_bookings,
		MIN(s.start_time) FILTER (WHERE s.start_time >= now()) AS next_booking_at
	FROM rooms r
	LEFT JOIN training_sessions s ON s.room_id = r.id
	WHERE r.deleted_at IS NULL
	GROUP BY r.id, r.room_number, r.room_type, r.capacity;`,

	// Duration is derived state; keep it consistent on every write.
	`CREATE OR REPLACE FUNCTION training_sessions_set_duration()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.duration_minutes := EXTRACT(EPOCH FROM (NEW.end_time - NEW.start_time)) / 60;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,

	`DROP TRIGGER IF EXISTS training_sessions_duration ON training_sessions;`,
	`CREATE TRIGGER training_sessions_duration
	BEFORE INSERT OR UPDATE OF start_time, end_time ON training_sessions
	FOR EACH ROW EXECUTE FUNCTION training_sessions_set_duration();`,

	// Storage-layer backstop for the scheduler: reject any row whose half-open
	// window overlaps an existing session for the same trainer or room. The
	// application check under row locks should make this unreachable.
	`CREATE OR REPLACE FUNCTION training_sessions_reject_overlap()
	RETURNS TRIGGER AS $$
	BEGIN
		IF NEW.end_time <= NEW.start_time THEN
			RAISE EXCEPTION 'session window is empty or inverted'
				USING ERRCODE = 'check_violation';
		END IF;
		IF EXISTS (
			SELECT 1 FROM training_sessions o
			WHERE o.trainer_id = NEW.trainer_id
			  AND o.id <> NEW.id
			  AND o.start_time < NEW.end_time
			  AND NEW.start_time < o.end_time
		) THEN
			RAISE EXCEPTION 'trainer % double-booked', NEW.trainer_id
				USING ERRCODE = 'exclusion_violation';
		END IF;
		IF NEW.room_id IS NOT NULL AND EXISTS (
			SELECT 1 FROM training_sessions o
			WHERE o.room_id = NEW.room_id
			  AND o.id <> NEW.id
			  AND o.start_time < NEW.end_time
			  AND NEW.start_time < o.end_time
		) THEN
			RAISE EXCEPTION 'room % double-booked', NEW.room_id
				USING ERRCODE = 'exclusion_violation';
		END IF;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,

	`DROP TRIGGER IF EXISTS training_sessions_no_overlap ON training_sessions;`,
	`CREATE TRIGGER training_sessions_no_overlap
	BEFORE INSERT OR UPDATE OF trainer_id, room_id, start_time, end_time ON training_sessions
	FOR EACH ROW EXECUTE FUNCTION training_sessions_reject_overlap();`,
}
