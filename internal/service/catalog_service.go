package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/util"
	"scales_practice_backend/pkg/logger"
)

// CatalogService 音阶/琶音目录的查询、编辑与初始化
type CatalogService struct {
	ScaleRepo    *repository.ScaleRepository
	ArpeggioRepo *repository.ArpeggioRepository
}

func NewCatalogService(scaleRepo *repository.ScaleRepository, arpeggioRepo *repository.ArpeggioRepository) *CatalogService {
	return &CatalogService{ScaleRepo: scaleRepo, ArpeggioRepo: arpeggioRepo}
}

// CatalogItemUpdate 单条目录条目的可选更新字段
type CatalogItemUpdate struct {
	Enabled          *bool
	Weight           *float64
	TargetBPM        *int
	ArticulationMode *string
}

// InitResult 初始化结果，幂等：已有数据时只报告现状
type InitResult struct {
	Message   string `json:"message"`
	Scales    int64  `json:"scales"`
	Arpeggios int64  `json:"arpeggios"`
}

func (s *CatalogService) ListScales(filter repository.CatalogFilter) ([]*model.Scale, error) {
	return s.ScaleRepo.List(filter)
}

func (s *CatalogService) ListArpeggios(filter repository.CatalogFilter) ([]*model.Arpeggio, error) {
	return s.ArpeggioRepo.List(filter)
}

// UpdateScale 更新启用状态/权重/目标BPM/演奏法限定；target_bpm 传0表示清除
func (s *CatalogService) UpdateScale(id uint, update CatalogItemUpdate) (*model.Scale, error) {
	scale, err := s.ScaleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScaleNotFound
		}
		return nil, err
	}

	if update.Enabled != nil {
		scale.Enabled = *update.Enabled
	}
	if update.Weight != nil {
		scale.Weight = *update.Weight
	}
	if update.TargetBPM != nil {
		if *update.TargetBPM > 0 {
			scale.TargetBPM = update.TargetBPM
		} else {
			scale.TargetBPM = nil
		}
	}
	if update.ArticulationMode != nil {
		if !isValidArticulationMode(*update.ArticulationMode) {
			return nil, util.ErrInvalidArticulationMode
		}
		scale.ArticulationMode = *update.ArticulationMode
	}

	if err := s.ScaleRepo.Update(scale); err != nil {
		return nil, err
	}
	return scale, nil
}

func (s *CatalogService) UpdateArpeggio(id uint, update CatalogItemUpdate) (*model.Arpeggio, error) {
	arpeggio, err := s.ArpeggioRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArpeggioNotFound
		}
		return nil, err
	}

	if update.Enabled != nil {
		arpeggio.Enabled = *update.Enabled
	}
	if update.Weight != nil {
		arpeggio.Weight = *update.Weight
	}
	if update.TargetBPM != nil {
		if *update.TargetBPM > 0 {
			arpeggio.TargetBPM = update.TargetBPM
		} else {
			arpeggio.TargetBPM = nil
		}
	}
	if update.ArticulationMode != nil {
		if !isValidArticulationMode(*update.ArticulationMode) {
			return nil, util.ErrInvalidArticulationMode
		}
		arpeggio.ArticulationMode = *update.ArticulationMode
	}

	if err := s.ArpeggioRepo.Update(arpeggio); err != nil {
		return nil, err
	}
	return arpeggio, nil
}

func (s *CatalogService) BulkEnableScales(ids []uint, enabled bool) (int64, error) {
	return s.ScaleRepo.BulkEnable(ids, enabled)
}

func (s *CatalogService) BulkEnableArpeggios(ids []uint, enabled bool) (int64, error) {
	return s.ArpeggioRepo.BulkEnable(ids, enabled)
}

func (s *CatalogService) BulkArticulationScales(ids []uint, mode string) (int64, error) {
	if !isValidArticulationMode(mode) {
		return 0, util.ErrInvalidArticulationMode
	}
	return s.ScaleRepo.BulkArticulation(ids, mode)
}

func (s *CatalogService) BulkArticulationArpeggios(ids []uint, mode string) (int64, error) {
	if !isValidArticulationMode(mode) {
		return 0, util.ErrInvalidArticulationMode
	}
	return s.ArpeggioRepo.BulkArticulation(ids, mode)
}

// InitDatabase 生成全部 音名×变化记号×类型×八度 组合，默认全部停用。
// 目录非空时不重复生成。
func (s *CatalogService) InitDatabase() (*InitResult, error) {
	scaleCount, err := s.ScaleRepo.Count()
	if err != nil {
		return nil, err
	}
	arpeggioCount, err := s.ArpeggioRepo.Count()
	if err != nil {
		return nil, err
	}

	if scaleCount > 0 || arpeggioCount > 0 {
		return &InitResult{
			Message:   "Database already initialized",
			Scales:    scaleCount,
			Arpeggios: arpeggioCount,
		}, nil
	}

	var scales []*model.Scale
	for _, note := range model.Notes {
		for _, accidental := range model.Accidentals {
			for _, scaleType := range model.ScaleTypes {
				for _, octaves := range model.ScaleOctaves {
					scales = append(scales, &model.Scale{
						Note:             note,
						Accidental:       accidentalPtr(accidental),
						Type:             scaleType,
						Octaves:          octaves,
						Enabled:          false,
						Weight:           1.0,
						ArticulationMode: model.ArticulationBoth,
					})
				}
			}
		}
	}

	var arpeggios []*model.Arpeggio
	for _, note := range model.Notes {
		for _, accidental := range model.Accidentals {
			for _, arpeggioType := range model.ArpeggioTypes {
				for _, octaves := range model.ArpeggioOctaves {
					arpeggios = append(arpeggios, &model.Arpeggio{
						Note:             note,
						Accidental:       accidentalPtr(accidental),
						Type:             arpeggioType,
						Octaves:          octaves,
						Enabled:          false,
						Weight:           1.0,
						ArticulationMode: model.ArticulationBoth,
					})
				}
			}
		}
	}

	if err := s.ScaleRepo.CreateBatch(scales); err != nil {
		return nil, err
	}
	if err := s.ArpeggioRepo.CreateBatch(arpeggios); err != nil {
		return nil, err
	}

	logger.Log.Info("Catalog initialized",
		zap.Int("scales", len(scales)),
		zap.Int("arpeggios", len(arpeggios)))

	return &InitResult{
		Message:   "Database initialized successfully",
		Scales:    int64(len(scales)),
		Arpeggios: int64(len(arpeggios)),
	}, nil
}

func accidentalPtr(accidental string) *string {
	if accidental == "" {
		return nil
	}
	return &accidental
}

func isValidArticulationMode(mode string) bool {
	for _, m := range model.ArticulationModes {
		if m == mode {
			return true
		}
	}
	return false
}
