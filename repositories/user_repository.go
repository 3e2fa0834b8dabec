package repositories

import (
	"manuscript-review/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	CreateEditor(editor *models.Editor) error
	GetEditorByID(id uint) (*models.Editor, error)
	GetEditorByUserID(userID uint) (*models.Editor, error)
	GetEditors() ([]models.Editor, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) CreateEditor(editor *models.Editor) error {
	return r.db.Create(editor).Error
}

func (r *userRepository) GetEditorByID(id uint) (*models.Editor, error) {
	var editor models.Editor
	if err := r.db.Preload("User").First(&editor, id).Error; err != nil {
		return nil, err
	}
	return &editor, nil
}

func (r *userRepository) GetEditorByUserID(userID uint) (*models.Editor, error) {
	var editor models.Editor
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&editor).Error; err != nil {
		return nil, err
	}
	return &editor, nil
}

func (r *userRepository) GetEditors() ([]models.Editor, error) {
	var editors []models.Editor
	err := r.db.Preload("User").Order("created_at").Find(&editors).Error
	return editors, err
}
