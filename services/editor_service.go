package services

import (
	"errors"

	"manuscript-review/models"
	"manuscript-review/repositories"

	"gorm.io/gorm"
)

// EditorService is the admin surface for managing reviewer profiles.
type EditorService interface {
	CreateEditor(req models.CreateEditorRequest) (*models.Editor, error)
	GetEditors() ([]models.Editor, error)
	GetEditor(id uint) (*models.Editor, error)
}

type editorService struct {
	userRepo repositories.UserRepository
}

func NewEditorService(userRepo repositories.UserRepository) EditorService {
	return &editorService{userRepo: userRepo}
}

func (s *editorService) CreateEditor(req models.CreateEditorRequest) (*models.Editor, error) {
	if !models.ValidEditType(req.Specialization) {
		return nil, errors.New("invalid specialization")
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "user", ID: req.UserID}
		}
		return nil, err
	}

	// An editor profile only makes sense on a user holding the editor role.
	if user.Role != models.RoleEditor && user.Role != models.RoleAdmin {
		return nil, errors.New("user must have the editor role")
	}

	_, err = s.userRepo.GetEditorByUserID(req.UserID)
	if err == nil {
		return nil, errors.New("editor profile already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	editor := &models.Editor{
		UserID:         req.UserID,
		Specialization: req.Specialization,
		IsActive:       true,
	}

	if err := s.userRepo.CreateEditor(editor); err != nil {
		return nil, err
	}

	return s.userRepo.GetEditorByID(editor.ID)
}

func (s *editorService) GetEditors() ([]models.Editor, error) {
	return s.userRepo.GetEditors()
}

func (s *editorService) GetEditor(id uint) (*models.Editor, error) {
	editor, err := s.userRepo.GetEditorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "editor", ID: id}
		}
		return nil, err
	}
	return editor, nil
}
