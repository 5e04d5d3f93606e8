package dto

// AddStudentRequest creates a pending student account: blank password, not
// yet activated. The coordinator fills the roster; students activate
// themselves by email code.
type AddStudentRequest struct {
	StudentNo     string `json:"student_no" form:"student_no" validate:"required,max=32"`
	CCAEmail      string `json:"cca_email" form:"cca_email" validate:"required,email,max=254"`
	LastName      string `json:"last_name" form:"last_name" validate:"required,max=100"`
	FirstName     string `json:"first_name" form:"first_name" validate:"required,max=100"`
	SecondName    string `json:"second_name" form:"second_name" validate:"omitempty,max=100"`
	MiddleInitial string `json:"middle_initial" form:"middle_initial" validate:"omitempty,max=10"`
	SchoolYear    string `json:"school_year" form:"school_year" validate:"omitempty,max=20"`
	Program       string `json:"program" form:"program" validate:"required,max=100"`
	Section       string `json:"section" form:"section" validate:"required,max=50"`
}

type UpdateStudentRequest struct {
	StudentNo     string `json:"student_no" form:"student_no" validate:"required,max=32"`
	CCAEmail      string `json:"cca_email" form:"cca_email" validate:"required,email,max=254"`
	LastName      string `json:"last_name" form:"last_name" validate:"required,max=100"`
	FirstName     string `json:"first_name" form:"first_name" validate:"required,max=100"`
	SecondName    string `json:"second_name" form:"second_name" validate:"omitempty,max=100"`
	MiddleInitial string `json:"middle_initial" form:"middle_initial" validate:"omitempty,max=10"`
	SchoolYear    string `json:"school_year" form:"school_year" validate:"omitempty,max=20"`
	Program       string `json:"program" form:"program" validate:"required,max=100"`
	Section       string `json:"section" form:"section" validate:"required,max=50"`
}

type AddInstructorRequest struct {
	CCAEmail      string `json:"cca_email" form:"cca_email" validate:"required,email,max=254"`
	LastName      string `json:"last_name" form:"last_name" validate:"required,max=100"`
	FirstName     string `json:"first_name" form:"first_name" validate:"required,max=100"`
	SecondName    string `json:"second_name" form:"second_name" validate:"omitempty,max=100"`
	MiddleInitial string `json:"middle_initial" form:"middle_initial" validate:"omitempty,max=10"`
}

type UpdateInstructorRequest struct {
	CCAEmail      string `json:"cca_email" form:"cca_email" validate:"required,email,max=254"`
	LastName      string `json:"last_name" form:"last_name" validate:"required,max=100"`
	FirstName     string `json:"first_name" form:"first_name" validate:"required,max=100"`
	SecondName    string `json:"second_name" form:"second_name" validate:"omitempty,max=100"`
	MiddleInitial string `json:"middle_initial" form:"middle_initial" validate:"omitempty,max=10"`
}
