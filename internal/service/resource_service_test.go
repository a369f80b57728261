package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

func studentPayload(email string) dto.StudentCreateRequest {
	return dto.StudentCreateRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		DateOfBirth:    "1990-12-10",
		Email:          email,
		EnrollmentDate: "2024-09-01",
		Password:       "supersecret",
	}
}

func TestStudentServiceLifecycle(t *testing.T) {
	db := setupServiceDB(t)
	notifier := &recordingNotifier{}
	deps, activities := testDeps(t, notifier)
	svc := NewStudentService(repository.NewStudentRepository(db), deps)
	ctx := context.Background()
	actor := ActivityActor{ID: 9, Role: RoleAdmin}

	created, err := svc.Create(ctx, actor, studentPayload(" Ada@Example.com "))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "ada@example.com", created.Email)
	require.Equal(t, models.StudentStatusActive, created.Status)
	require.NotEmpty(t, created.PasswordHash)
	require.NotEqual(t, "supersecret", created.PasswordHash)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", fetched.FirstName)
	require.Equal(t, "1990-12-10", fetched.DateOfBirth.Format(dto.DateLayout))

	status := models.StudentStatusGraduated
	patched, err := svc.Update(ctx, actor, created.ID, dto.StudentUpdateRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, models.StudentStatusGraduated, patched.Status)
	require.Equal(t, "Ada", patched.FirstName)
	require.Equal(t, created.PasswordHash, patched.PasswordHash)

	replacement := studentPayload("ada@example.com")
	replacement.FirstName = "Augusta"
	replacement.Password = ""
	replaced, err := svc.Replace(ctx, actor, created.ID, replacement)
	require.NoError(t, err)
	require.Equal(t, "Augusta", replaced.FirstName)
	require.Equal(t, models.StudentStatusActive, replaced.Status)
	require.Equal(t, created.PasswordHash, replaced.PasswordHash)

	require.NoError(t, svc.Delete(ctx, actor, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.Equal(t, []recordedChange{
		{resource: "student", action: dto.ChangeCreated, id: created.ID},
		{resource: "student", action: dto.ChangeUpdated, id: created.ID},
		{resource: "student", action: dto.ChangeUpdated, id: created.ID},
		{resource: "student", action: dto.ChangeDeleted, id: created.ID},
	}, notifier.snapshot())
	require.Len(t, activities.entries, 4)
	require.Equal(t, "admin", activities.entries[0].ActorRole)
	require.Equal(t, "student", activities.entries[0].EntityType)
}

func TestStudentServiceErrors(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	svc := NewStudentService(repository.NewStudentRepository(db), deps)
	ctx := context.Background()

	_, err := svc.Create(ctx, ActivityActor{}, studentPayload("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, ActivityActor{}, studentPayload("dup@example.com"))
	require.ErrorIs(t, err, ErrDuplicate)

	invalid := studentPayload("other@example.com")
	invalid.Status = "SLEEPING"
	_, err = svc.Create(ctx, ActivityActor{}, invalid)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	name := "Ghost"
	_, err = svc.Update(ctx, ActivityActor{}, 404, dto.StudentUpdateRequest{FirstName: &name})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Replace(ctx, ActivityActor{}, 404, studentPayload("ghost@example.com"))
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, ActivityActor{}, 404), ErrNotFound)
}

func TestFormationServiceEnforcesSpotsAndDates(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	svc := NewFormationService(repository.NewCRUDRepository[models.Formation](db), deps)
	ctx := context.Background()

	remaining := 12
	payload := dto.FormationCreateRequest{
		Name:            "<b>Backend</b> Bootcamp",
		AvailableSpots:  10,
		RemainingSpots:  &remaining,
		DurationInHours: 120,
		StartDate:       "2025-01-06",
		EndDate:         "2025-03-28",
	}
	_, err := svc.Create(ctx, ActivityActor{}, payload)
	require.ErrorIs(t, err, ErrInvalidInput)

	remaining = 10
	payload.EndDate = "2024-12-31"
	_, err = svc.Create(ctx, ActivityActor{}, payload)
	require.ErrorIs(t, err, ErrInvalidInput)

	payload.EndDate = "2025-03-28"
	created, err := svc.Create(ctx, ActivityActor{}, payload)
	require.NoError(t, err)
	require.Equal(t, "Backend Bootcamp", created.Name)

	tooMany := 11
	_, err = svc.Update(ctx, ActivityActor{}, created.ID, dto.FormationUpdateRequest{RemainingSpots: &tooMany})
	require.ErrorIs(t, err, ErrInvalidInput)

	fewer := 4
	updated, err := svc.Update(ctx, ActivityActor{}, created.ID, dto.FormationUpdateRequest{RemainingSpots: &fewer})
	require.NoError(t, err)
	require.Equal(t, 4, *updated.RemainingSpots)
}

func TestScheduleServiceRequiresOrderedTimes(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	svc := NewScheduleService(repository.NewCRUDRepository[models.Schedule](db), deps)

	_, err := svc.Create(context.Background(), ActivityActor{}, dto.ScheduleCreateRequest{
		DayOfWeek:   models.DayMonday,
		StartTime:   "14:00",
		EndTime:     "09:00",
		Location:    "Room 1",
		FormationID: 1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), ActivityActor{}, dto.ScheduleCreateRequest{
		DayOfWeek:   "FUNDAY",
		StartTime:   "09:00",
		EndTime:     "14:00",
		Location:    "Room 1",
		FormationID: 1,
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestScheduleServiceComparesSingleDigitHours(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	ctx := context.Background()
	svc := NewScheduleService(repository.NewCRUDRepository[models.Schedule](db), deps)

	created, err := svc.Create(ctx, ActivityActor{}, dto.ScheduleCreateRequest{
		DayOfWeek:   models.DayMonday,
		StartTime:   "9:00",
		EndTime:     "10:30",
		Location:    "Room 2",
		FormationID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, "09:00", created.StartTime)
	require.Equal(t, "10:30", created.EndTime)

	_, err = svc.Create(ctx, ActivityActor{}, dto.ScheduleCreateRequest{
		DayOfWeek:   models.DayTuesday,
		StartTime:   "10:00",
		EndTime:     "9:30",
		Location:    "Room 2",
		FormationID: 1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	early := "8:15"
	patched, err := svc.Update(ctx, ActivityActor{}, created.ID, dto.ScheduleUpdateRequest{StartTime: &early})
	require.NoError(t, err)
	require.Equal(t, "08:15", patched.StartTime)

	late := "11:00"
	_, err = svc.Update(ctx, ActivityActor{}, created.ID, dto.ScheduleUpdateRequest{StartTime: &late})
	require.ErrorIs(t, err, ErrInvalidInput)

	schedules, err := svc.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, schedules, 1)
}

func TestEventServiceComparesSingleDigitHours(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	ctx := context.Background()
	svc := NewEventService(repository.NewCRUDRepository[models.Event](db), deps)

	event, err := svc.Create(ctx, ActivityActor{}, dto.EventCreateRequest{Title: "Workshop", Date: "2025-02-03", StartTime: "9:00", EndTime: "10:30", CalendarID: 1})
	require.NoError(t, err)
	require.Equal(t, "09:00", event.StartTime)

	_, err = svc.Create(ctx, ActivityActor{}, dto.EventCreateRequest{Title: "Review", Date: "2025-02-03", StartTime: "10:00", EndTime: "9:30", CalendarID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClockOrdered(t *testing.T) {
	require.True(t, clockOrdered("9:00", "10:30"))
	require.True(t, clockOrdered("09:00", "9:01"))
	require.False(t, clockOrdered("10:00", "9:30"))
	require.False(t, clockOrdered("10:00", "10:00"))
	require.False(t, clockOrdered("noon", "13:00"))
	require.Equal(t, "07:05", normalizeClock(" 7:05 "))
	require.Equal(t, "noon", normalizeClock("noon"))
}

func TestEnrollmentServiceSingleActiveRule(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	ctx := context.Background()

	students := NewStudentService(repository.NewStudentRepository(db), deps)
	formations := NewFormationService(repository.NewCRUDRepository[models.Formation](db), deps)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db), deps)

	student, err := students.Create(ctx, ActivityActor{}, studentPayload("enrolled@example.com"))
	require.NoError(t, err)
	formation, err := formations.Create(ctx, ActivityActor{}, dto.FormationCreateRequest{
		Name: "Data", AvailableSpots: 5, DurationInHours: 10, StartDate: "2025-01-01", EndDate: "2025-02-01",
	})
	require.NoError(t, err)

	first, err := svc.Create(ctx, ActivityActor{}, dto.EnrollmentCreateRequest{StudentID: student.ID, FormationID: formation.ID})
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentStatusActive, first.Status)
	require.False(t, first.EnrollmentDate.IsZero())

	_, err = svc.Create(ctx, ActivityActor{}, dto.EnrollmentCreateRequest{StudentID: student.ID, FormationID: formation.ID})
	require.ErrorIs(t, err, ErrActiveEnrollmentExists)

	cancelled, err := svc.Create(ctx, ActivityActor{}, dto.EnrollmentCreateRequest{
		StudentID: student.ID, FormationID: formation.ID, Status: models.EnrollmentStatusCancelled,
	})
	require.NoError(t, err)

	active := models.EnrollmentStatusActive
	_, err = svc.Update(ctx, ActivityActor{}, cancelled.ID, dto.EnrollmentUpdateRequest{Status: &active})
	require.ErrorIs(t, err, ErrActiveEnrollmentExists)

	// re-saving the active enrollment itself is allowed
	_, err = svc.Update(ctx, ActivityActor{}, first.ID, dto.EnrollmentUpdateRequest{Status: &active})
	require.NoError(t, err)

	_, err = svc.Create(ctx, ActivityActor{}, dto.EnrollmentCreateRequest{StudentID: 999, FormationID: formation.ID})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGradeServiceStats(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	svc := NewGradeService(repository.NewGradeRepository(db), deps)
	ctx := context.Background()

	for _, value := range []float64{50, 70, 90} {
		v := value
		_, err := svc.Create(ctx, ActivityActor{}, dto.GradeCreateRequest{Value: &v, Date: "2025-01-10", StudentID: 1, CourseID: 2})
		require.NoError(t, err)
	}
	zero := 0.0
	_, err := svc.Create(ctx, ActivityActor{}, dto.GradeCreateRequest{Value: &zero, Date: "2025-01-10", StudentID: 2, CourseID: 2})
	require.NoError(t, err)

	tooHigh := 101.0
	_, err = svc.Create(ctx, ActivityActor{}, dto.GradeCreateRequest{Value: &tooHigh, Date: "2025-01-10", StudentID: 1, CourseID: 2})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	stats, err := svc.Stats(ctx, repository.GradeFilter{StudentID: ptrUint(1)})
	require.NoError(t, err)
	require.Equal(t, 70, stats.Average)
	require.Equal(t, 67, stats.PassingRate)
	require.Equal(t, 3, stats.Count)
}

func TestCalendarServiceReturnsEvents(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	ctx := context.Background()

	calendars := NewCalendarService(repository.NewCalendarRepository(db), deps)
	events := NewEventService(repository.NewCRUDRepository[models.Event](db), deps)

	calendar, err := calendars.Create(ctx, ActivityActor{}, dto.CalendarCreateRequest{FormationID: 3})
	require.NoError(t, err)
	require.NotNil(t, calendar.Events)

	_, err = calendars.Create(ctx, ActivityActor{}, dto.CalendarCreateRequest{FormationID: 3})
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = events.Create(ctx, ActivityActor{}, dto.EventCreateRequest{Title: "Exam", Date: "2025-03-01", StartTime: "09:00", EndTime: "11:00", CalendarID: calendar.ID})
	require.NoError(t, err)
	_, err = events.Create(ctx, ActivityActor{}, dto.EventCreateRequest{Title: "Kickoff", Date: "2025-01-01", StartTime: "09:00", EndTime: "10:00", CalendarID: calendar.ID})
	require.NoError(t, err)

	loaded, err := calendars.ForFormation(ctx, 3)
	require.NoError(t, err)
	require.Len(t, loaded.Events, 2)
	require.Equal(t, "Kickoff", loaded.Events[0].Title)

	listed, err := calendars.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Events, 2)

	_, err = calendars.ForFormation(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTrainingRequestServiceSanitizesMessage(t *testing.T) {
	db := setupServiceDB(t)
	deps, _ := testDeps(t, nil)
	svc := NewTrainingRequestService(repository.NewTrainingRequestRepository(db), deps)

	created, err := svc.Create(context.Background(), ActivityActor{}, dto.TrainingRequestCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Message:   ptrString("<script>alert(1)</script>I want to join"),
	})
	require.NoError(t, err)
	require.Equal(t, models.TrainingRequestPending, created.Status)
	require.NotNil(t, created.Message)
	require.Equal(t, "I want to join", *created.Message)
}
