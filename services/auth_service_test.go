package services

import (
	"testing"

	"manuscript-review/models"
	"manuscript-review/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	svc AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewAuthService(repositories.NewUserRepository(s.db))
}

func (s *AuthServiceSuite) TestRegisterAndLogin() {
	resp, err := s.svc.Register(models.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(models.RoleAuthor, resp.User.Role)
	s.Empty(resp.User.Password)

	login, err := s.svc.Login(models.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(login.Token)

	_, err = s.svc.Login(models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	s.EqualError(err, "invalid credentials")
}

// Registration is open to authors and editors only; the admin role can
// never be self-assigned through the public endpoint.
func (s *AuthServiceSuite) TestRegisterCannotSelfAssignAdmin() {
	_, err := s.svc.Register(models.RegisterRequest{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	s.ErrorAs(err, &models.AuthorizationError{})

	var count int64
	s.Require().NoError(s.db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error)
	s.EqualValues(0, count)
}

func (s *AuthServiceSuite) TestRegisterEditorRole() {
	resp, err := s.svc.Register(models.RegisterRequest{
		Username: "reviewer",
		Email:    "reviewer@example.com",
		Password: "password123",
		Role:     models.RoleEditor,
	})
	s.Require().NoError(err)
	s.Equal(models.RoleEditor, resp.User.Role)

	// An editor user without an admin-created profile is still locked
	// out of the editor surfaces.
	_, err = s.svc.GetEditorProfile(resp.User.ID)
	s.ErrorAs(err, &models.AuthorizationError{})
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	_, err := s.svc.Register(models.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)

	_, err = s.svc.Register(models.RegisterRequest{
		Username: "ada2",
		Email:    "ada@example.com",
		Password: "password123",
	})
	s.EqualError(err, "user already exists")
}

func (s *AuthServiceSuite) TestGetEditorProfile() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeGrammar)

	resolved, err := s.svc.GetEditorProfile(editor.UserID)
	s.Require().NoError(err)
	s.Equal(editor.ID, resolved.ID)
	s.Equal(models.EditTypeGrammar, resolved.Specialization)

	author := seedUser(s.T(), s.db, "author", models.RoleAuthor)
	_, err = s.svc.GetEditorProfile(author.ID)
	s.ErrorAs(err, &models.AuthorizationError{})

	s.Require().NoError(s.db.Model(&models.Editor{}).
		Where("id = ?", editor.ID).
		Update("is_active", false).Error)
	_, err = s.svc.GetEditorProfile(editor.UserID)
	s.ErrorAs(err, &models.AuthorizationError{})
}
