package models

// Request structs carry validate tags for the shared validator; binding
// only decodes, validation failures come back translated per field.
type RegisterRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CreateArticleRequest is bound from a multipart form; the manuscript
// file itself comes through as a form file named "file".
type CreateArticleRequest struct {
	Title    string   `form:"title" validate:"required,min=1,max=255"`
	EditType EditType `form:"edit_type" validate:"required"`
}

// SubmitArticleRequest carries the editor's completed work; the edited
// file arrives as the form file "edited_file".
type SubmitArticleRequest struct {
	Comments string `form:"comments"`
}

type RejectArticleRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CreateEditorRequest struct {
	UserID         uint     `json:"user_id" validate:"required"`
	Specialization EditType `json:"specialization" validate:"required"`
}

type CreateFeedbackRequest struct {
	ArticleID uint   `json:"article_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type ArticleListParams struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}
