package repository

import (
	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
)

type ArpeggioRepository struct {
	DB *gorm.DB
}

func NewArpeggioRepository(db *gorm.DB) *ArpeggioRepository {
	return &ArpeggioRepository{DB: db}
}

// List 按条件列出琶音，排序与音阶一致
func (r *ArpeggioRepository) List(filter CatalogFilter) ([]*model.Arpeggio, error) {
	query := r.DB.Model(&model.Arpeggio{})
	if filter.Note != "" {
		query = query.Where("note = ?", filter.Note)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Octaves > 0 {
		query = query.Where("octaves = ?", filter.Octaves)
	}
	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}

	var arpeggios []*model.Arpeggio
	err := query.Order("note, accidental, type, octaves").Find(&arpeggios).Error
	return arpeggios, err
}

// ListEnabled 列出所有启用的琶音
func (r *ArpeggioRepository) ListEnabled() ([]*model.Arpeggio, error) {
	var arpeggios []*model.Arpeggio
	err := r.DB.Where("enabled = ?", true).Find(&arpeggios).Error
	return arpeggios, err
}

func (r *ArpeggioRepository) GetByID(id uint) (*model.Arpeggio, error) {
	var arpeggio model.Arpeggio
	err := r.DB.First(&arpeggio, id).Error
	if err != nil {
		return nil, err
	}
	return &arpeggio, nil
}

func (r *ArpeggioRepository) Update(arpeggio *model.Arpeggio) error {
	return r.DB.Save(arpeggio).Error
}

func (r *ArpeggioRepository) BulkEnable(ids []uint, enabled bool) (int64, error) {
	result := r.DB.Model(&model.Arpeggio{}).Where("id IN ?", ids).Update("enabled", enabled)
	return result.RowsAffected, result.Error
}

func (r *ArpeggioRepository) BulkArticulation(ids []uint, mode string) (int64, error) {
	result := r.DB.Model(&model.Arpeggio{}).Where("id IN ?", ids).Update("articulation_mode", mode)
	return result.RowsAffected, result.Error
}

func (r *ArpeggioRepository) DisableAll() error {
	return r.DB.Model(&model.Arpeggio{}).Where("enabled = ?", true).Update("enabled", false).Error
}

func (r *ArpeggioRepository) EnableByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.DB.Model(&model.Arpeggio{}).Where("id IN ?", ids).Update("enabled", true)
	return result.RowsAffected, result.Error
}

func (r *ArpeggioRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Arpeggio{}).Count(&count).Error
	return count, err
}

func (r *ArpeggioRepository) CreateBatch(arpeggios []*model.Arpeggio) error {
	return r.DB.Create(&arpeggios).Error
}
