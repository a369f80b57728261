package client

import (
	"context"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
)

// The functions below keep the per-entity service names used by the front end.
// List reads swallow failures into an empty slice; the others propagate.

// GetAllAdmins lists every admin record, empty on failure.
func (c *Client) GetAllAdmins(ctx context.Context) []models.Admin {
	return c.Admins.List(ctx).Items()
}

// GetAdminByID loads one admin; a missing id yields an error matching IsNotFound.
func (c *Client) GetAdminByID(ctx context.Context, id uint) (models.Admin, error) {
	return c.Admins.Get(ctx, id)
}

// CreateAdmin registers an admin and returns the stored record.
func (c *Client) CreateAdmin(ctx context.Context, payload dto.AdminCreateRequest) (models.Admin, error) {
	return c.Admins.Create(ctx, payload)
}

// UpdateAdmin replaces an admin with the full payload.
func (c *Client) UpdateAdmin(ctx context.Context, id uint, payload dto.AdminCreateRequest) (models.Admin, error) {
	return c.Admins.Replace(ctx, id, payload)
}

// DeleteAdmin removes an admin.
func (c *Client) DeleteAdmin(ctx context.Context, id uint) error {
	return c.Admins.Delete(ctx, id)
}

// GetAllStudents lists every student record, empty on failure.
func (c *Client) GetAllStudents(ctx context.Context) []models.Student {
	return c.Students.List(ctx).Items()
}

// GetStudentByID loads one student; a missing id yields an error matching IsNotFound.
func (c *Client) GetStudentByID(ctx context.Context, id uint) (models.Student, error) {
	return c.Students.Get(ctx, id)
}

// CreateStudent registers a student and returns the stored record.
func (c *Client) CreateStudent(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error) {
	return c.Students.Create(ctx, payload)
}

// UpdateStudent replaces a student with the full payload.
func (c *Client) UpdateStudent(ctx context.Context, id uint, payload dto.StudentCreateRequest) (models.Student, error) {
	return c.Students.Replace(ctx, id, payload)
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id uint) error {
	return c.Students.Delete(ctx, id)
}

// GetAllTrainingRequests lists every training request record, empty on failure.
func (c *Client) GetAllTrainingRequests(ctx context.Context) []models.TrainingRequest {
	return c.TrainingRequests.List(ctx).Items()
}

// GetTrainingRequestByID loads one training request; a missing id yields an error matching IsNotFound.
func (c *Client) GetTrainingRequestByID(ctx context.Context, id uint) (models.TrainingRequest, error) {
	return c.TrainingRequests.Get(ctx, id)
}

// CreateTrainingRequest registers a training request and returns the stored record.
func (c *Client) CreateTrainingRequest(ctx context.Context, payload dto.TrainingRequestCreateRequest) (models.TrainingRequest, error) {
	return c.TrainingRequests.Create(ctx, payload)
}

// UpdateTrainingRequest replaces a training request with the full payload.
func (c *Client) UpdateTrainingRequest(ctx context.Context, id uint, payload dto.TrainingRequestCreateRequest) (models.TrainingRequest, error) {
	return c.TrainingRequests.Replace(ctx, id, payload)
}

// DeleteTrainingRequest removes a training request.
func (c *Client) DeleteTrainingRequest(ctx context.Context, id uint) error {
	return c.TrainingRequests.Delete(ctx, id)
}

// GetAllInstructors lists every instructor record, empty on failure.
func (c *Client) GetAllInstructors(ctx context.Context) []models.Instructor {
	return c.Instructors.List(ctx).Items()
}

// GetInstructorByID loads one instructor; a missing id yields an error matching IsNotFound.
func (c *Client) GetInstructorByID(ctx context.Context, id uint) (models.Instructor, error) {
	return c.Instructors.Get(ctx, id)
}

// CreateInstructor registers an instructor and returns the stored record.
func (c *Client) CreateInstructor(ctx context.Context, payload dto.InstructorCreateRequest) (models.Instructor, error) {
	return c.Instructors.Create(ctx, payload)
}

// UpdateInstructor replaces an instructor with the full payload.
func (c *Client) UpdateInstructor(ctx context.Context, id uint, payload dto.InstructorCreateRequest) (models.Instructor, error) {
	return c.Instructors.Replace(ctx, id, payload)
}

// DeleteInstructor removes an instructor.
func (c *Client) DeleteInstructor(ctx context.Context, id uint) error {
	return c.Instructors.Delete(ctx, id)
}

// GetAllFormations lists every formation record, empty on failure.
func (c *Client) GetAllFormations(ctx context.Context) []models.Formation {
	return c.Formations.List(ctx).Items()
}

// GetFormationByID loads one formation; a missing id yields an error matching IsNotFound.
func (c *Client) GetFormationByID(ctx context.Context, id uint) (models.Formation, error) {
	return c.Formations.Get(ctx, id)
}

// CreateFormation registers a formation and returns the stored record.
func (c *Client) CreateFormation(ctx context.Context, payload dto.FormationCreateRequest) (models.Formation, error) {
	return c.Formations.Create(ctx, payload)
}

// UpdateFormation replaces a formation with the full payload.
func (c *Client) UpdateFormation(ctx context.Context, id uint, payload dto.FormationCreateRequest) (models.Formation, error) {
	return c.Formations.Replace(ctx, id, payload)
}

// DeleteFormation removes a formation.
func (c *Client) DeleteFormation(ctx context.Context, id uint) error {
	return c.Formations.Delete(ctx, id)
}

// GetAllCourses lists every course record, empty on failure.
func (c *Client) GetAllCourses(ctx context.Context) []models.Course {
	return c.Courses.List(ctx).Items()
}

// GetCourseByID loads one course; a missing id yields an error matching IsNotFound.
func (c *Client) GetCourseByID(ctx context.Context, id uint) (models.Course, error) {
	return c.Courses.Get(ctx, id)
}

// CreateCourse registers a course and returns the stored record.
func (c *Client) CreateCourse(ctx context.Context, payload dto.CourseCreateRequest) (models.Course, error) {
	return c.Courses.Create(ctx, payload)
}

// UpdateCourse replaces a course with the full payload.
func (c *Client) UpdateCourse(ctx context.Context, id uint, payload dto.CourseCreateRequest) (models.Course, error) {
	return c.Courses.Replace(ctx, id, payload)
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id uint) error {
	return c.Courses.Delete(ctx, id)
}

// GetAllDepartments lists every department record, empty on failure.
func (c *Client) GetAllDepartments(ctx context.Context) []models.Department {
	return c.Departments.List(ctx).Items()
}

// GetDepartmentByID loads one department; a missing id yields an error matching IsNotFound.
func (c *Client) GetDepartmentByID(ctx context.Context, id uint) (models.Department, error) {
	return c.Departments.Get(ctx, id)
}

// CreateDepartment registers a department and returns the stored record.
func (c *Client) CreateDepartment(ctx context.Context, payload dto.DepartmentCreateRequest) (models.Department, error) {
	return c.Departments.Create(ctx, payload)
}

// UpdateDepartment replaces a department with the full payload.
func (c *Client) UpdateDepartment(ctx context.Context, id uint, payload dto.DepartmentCreateRequest) (models.Department, error) {
	return c.Departments.Replace(ctx, id, payload)
}

// DeleteDepartment removes a department.
func (c *Client) DeleteDepartment(ctx context.Context, id uint) error {
	return c.Departments.Delete(ctx, id)
}

// GetAllGrades lists every grade record, empty on failure.
func (c *Client) GetAllGrades(ctx context.Context) []models.Grade {
	return c.Grades.List(ctx).Items()
}

// GetGradeByID loads one grade; a missing id yields an error matching IsNotFound.
func (c *Client) GetGradeByID(ctx context.Context, id uint) (models.Grade, error) {
	return c.Grades.Get(ctx, id)
}

// CreateGrade registers a grade and returns the stored record.
func (c *Client) CreateGrade(ctx context.Context, payload dto.GradeCreateRequest) (models.Grade, error) {
	return c.Grades.Create(ctx, payload)
}

// UpdateGrade replaces a grade with the full payload.
func (c *Client) UpdateGrade(ctx context.Context, id uint, payload dto.GradeCreateRequest) (models.Grade, error) {
	return c.Grades.Replace(ctx, id, payload)
}

// DeleteGrade removes a grade.
func (c *Client) DeleteGrade(ctx context.Context, id uint) error {
	return c.Grades.Delete(ctx, id)
}

// GetAllEnrollments lists every enrollment record, empty on failure.
func (c *Client) GetAllEnrollments(ctx context.Context) []models.Enrollment {
	return c.Enrollments.List(ctx).Items()
}

// GetEnrollmentByID loads one enrollment; a missing id yields an error matching IsNotFound.
func (c *Client) GetEnrollmentByID(ctx context.Context, id uint) (models.Enrollment, error) {
	return c.Enrollments.Get(ctx, id)
}

// CreateEnrollment registers an enrollment and returns the stored record.
func (c *Client) CreateEnrollment(ctx context.Context, payload dto.EnrollmentCreateRequest) (models.Enrollment, error) {
	return c.Enrollments.Create(ctx, payload)
}

// UpdateEnrollment replaces an enrollment with the full payload.
func (c *Client) UpdateEnrollment(ctx context.Context, id uint, payload dto.EnrollmentCreateRequest) (models.Enrollment, error) {
	return c.Enrollments.Replace(ctx, id, payload)
}

// DeleteEnrollment removes an enrollment.
func (c *Client) DeleteEnrollment(ctx context.Context, id uint) error {
	return c.Enrollments.Delete(ctx, id)
}
