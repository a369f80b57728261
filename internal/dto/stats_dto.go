package dto

import (
	"math"
	"time"
)

// PassingThreshold is the minimum grade value counted as a pass.
const PassingThreshold = 60

// GradeStats summarizes a set of grade values.
type GradeStats struct {
	Count       int     `json:"count"`
	Average     int     `json:"average"`
	PassingRate int     `json:"passing_rate"`
	Highest     float64 `json:"highest"`
	Lowest      float64 `json:"lowest"`
}

// ComputeGradeStats rounds the average and the share of values >= 60 to whole numbers.
// An empty input yields zero values.
func ComputeGradeStats(values []float64) GradeStats {
	if len(values) == 0 {
		return GradeStats{}
	}

	var (
		sum     float64
		passing int
		highest = values[0]
		lowest  = values[0]
	)
	for _, value := range values {
		sum += value
		if value >= PassingThreshold {
			passing++
		}
		if value > highest {
			highest = value
		}
		if value < lowest {
			lowest = value
		}
	}

	count := len(values)
	return GradeStats{
		Count:       count,
		Average:     int(math.Round(sum / float64(count))),
		PassingRate: int(math.Round(float64(passing) * 100 / float64(count))),
		Highest:     highest,
		Lowest:      lowest,
	}
}

// DashboardResponse aggregates institute-wide counters.
type DashboardResponse struct {
	Students         int64            `json:"students"`
	StudentsByStatus map[string]int64 `json:"students_by_status"`
	Instructors      int64            `json:"instructors"`
	Formations       int64            `json:"formations"`
	Departments      int64            `json:"departments"`
	Courses          int64            `json:"courses"`
	ActiveEnrollment int64            `json:"active_enrollments"`
	PendingRequests  int64            `json:"pending_training_requests"`
	Grades           GradeStats       `json:"grades"`
	GeneratedAt      time.Time        `json:"generated_at"`
	CacheHit         bool             `json:"cache_hit"`
}
