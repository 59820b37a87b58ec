package repository

import (
	"context"

	"github.com/YunalDC/VitaRogueBack/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

type WorkoutListFilter struct {
	Category string
	Level    string
	Offset   int
	Limit    int
}

func (r *WorkoutRepository) List(ctx context.Context, filter WorkoutListFilter) ([]models.Workout, int, error) {
	totalQuery := `
		SELECT COUNT(*)
		FROM workouts
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR level = $2)
	`

	var total int
	if err := r.db.QueryRow(ctx, totalQuery, filter.Category, filter.Level).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, title, category, level, duration_minutes, description
		FROM workouts
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR level = $2)
		ORDER BY category, title
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.Category, filter.Level, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.Title,
			&workout.Category,
			&workout.Level,
			&workout.DurationMinutes,
			&workout.Description,
		); err != nil {
			return nil, 0, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}
