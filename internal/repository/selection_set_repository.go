package repository

import (
	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
)

type SelectionSetRepository struct {
	DB *gorm.DB
}

func NewSelectionSetRepository(db *gorm.DB) *SelectionSetRepository {
	return &SelectionSetRepository{DB: db}
}

func (r *SelectionSetRepository) List() ([]*model.SelectionSet, error) {
	var sets []*model.SelectionSet
	err := r.DB.Order("name").Find(&sets).Error
	return sets, err
}

func (r *SelectionSetRepository) GetByID(id uint) (*model.SelectionSet, error) {
	var set model.SelectionSet
	err := r.DB.First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *SelectionSetRepository) GetByName(name string) (*model.SelectionSet, error) {
	var set model.SelectionSet
	err := r.DB.Where("name = ?", name).First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// GetActive 当前激活的预设，没有则返回 gorm.ErrRecordNotFound
func (r *SelectionSetRepository) GetActive() (*model.SelectionSet, error) {
	var set model.SelectionSet
	err := r.DB.Where("is_active = ?", true).First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *SelectionSetRepository) Create(set *model.SelectionSet) error {
	return r.DB.Create(set).Error
}

func (r *SelectionSetRepository) Update(set *model.SelectionSet) error {
	return r.DB.Save(set).Error
}

func (r *SelectionSetRepository) Delete(id uint) error {
	return r.DB.Delete(&model.SelectionSet{}, id).Error
}

// DeactivateAll 取消全部预设的激活状态
func (r *SelectionSetRepository) DeactivateAll() error {
	return r.DB.Model(&model.SelectionSet{}).Where("is_active = ?", true).Update("is_active", false).Error
}
