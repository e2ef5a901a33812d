package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/util"
)

// SelectionSetService 命名预设：保存当前启用组合，之后可一键载入
type SelectionSetService struct {
	SetRepo      *repository.SelectionSetRepository
	ScaleRepo    *repository.ScaleRepository
	ArpeggioRepo *repository.ArpeggioRepository
}

func NewSelectionSetService(
	setRepo *repository.SelectionSetRepository,
	scaleRepo *repository.ScaleRepository,
	arpeggioRepo *repository.ArpeggioRepository,
) *SelectionSetService {
	return &SelectionSetService{SetRepo: setRepo, ScaleRepo: scaleRepo, ArpeggioRepo: arpeggioRepo}
}

// SelectionSetUpdate 预设更新请求
type SelectionSetUpdate struct {
	Name              *string
	ScaleIDs          []uint
	ArpeggioIDs       []uint
	UpdateFromCurrent bool
}

// LoadResult 载入预设后的启用数量回执
type LoadResult struct {
	Message          string `json:"message"`
	ScalesEnabled    int64  `json:"scales_enabled"`
	ArpeggiosEnabled int64  `json:"arpeggios_enabled"`
}

func (s *SelectionSetService) List() ([]*model.SelectionSet, error) {
	return s.SetRepo.List()
}

// GetActive 当前激活的预设；没有激活的预设时返回 nil
func (s *SelectionSetService) GetActive() (*model.SelectionSet, error) {
	set, err := s.SetRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return set, nil
}

// CreateFromCurrent 把当前启用的音阶/琶音存成新预设
func (s *SelectionSetService) CreateFromCurrent(name string) (*model.SelectionSet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrSelectionSetNameEmpty
	}

	if _, err := s.SetRepo.GetByName(name); err == nil {
		return nil, util.ErrSelectionSetNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	scaleIDs, arpeggioIDs, err := s.currentEnabledIDs()
	if err != nil {
		return nil, err
	}

	set := &model.SelectionSet{
		Name:        name,
		ScaleIDs:    scaleIDs,
		ArpeggioIDs: arpeggioIDs,
	}
	if err := s.SetRepo.Create(set); err != nil {
		return nil, err
	}
	return set, nil
}

// Update 更新名称或选择内容；UpdateFromCurrent 时重新捕获当前启用组合
func (s *SelectionSetService) Update(id uint, update SelectionSetUpdate) (*model.SelectionSet, error) {
	set, err := s.SetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSelectionSetNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, util.ErrSelectionSetNameEmpty
		}
		existing, err := s.SetRepo.GetByName(name)
		if err == nil && existing.ID != id {
			return nil, util.ErrSelectionSetNameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		set.Name = name
	}

	if update.UpdateFromCurrent {
		scaleIDs, arpeggioIDs, err := s.currentEnabledIDs()
		if err != nil {
			return nil, err
		}
		set.ScaleIDs = scaleIDs
		set.ArpeggioIDs = arpeggioIDs
	} else {
		if update.ScaleIDs != nil {
			set.ScaleIDs = update.ScaleIDs
		}
		if update.ArpeggioIDs != nil {
			set.ArpeggioIDs = update.ArpeggioIDs
		}
	}

	if err := s.SetRepo.Update(set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *SelectionSetService) Delete(id uint) error {
	if _, err := s.SetRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSelectionSetNotFound
		}
		return err
	}
	return s.SetRepo.Delete(id)
}

// Load 载入预设：启用其条目、停用其他全部、标记激活
func (s *SelectionSetService) Load(id uint) (*LoadResult, error) {
	set, err := s.SetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSelectionSetNotFound
		}
		return nil, err
	}

	if err := s.SetRepo.DeactivateAll(); err != nil {
		return nil, err
	}
	if err := s.ScaleRepo.DisableAll(); err != nil {
		return nil, err
	}
	if err := s.ArpeggioRepo.DisableAll(); err != nil {
		return nil, err
	}

	scalesEnabled, err := s.ScaleRepo.EnableByIDs(set.ScaleIDs)
	if err != nil {
		return nil, err
	}
	arpeggiosEnabled, err := s.ArpeggioRepo.EnableByIDs(set.ArpeggioIDs)
	if err != nil {
		return nil, err
	}

	set.IsActive = true
	if err := s.SetRepo.Update(set); err != nil {
		return nil, err
	}

	return &LoadResult{
		Message:          "Selection set loaded",
		ScalesEnabled:    scalesEnabled,
		ArpeggiosEnabled: arpeggiosEnabled,
	}, nil
}

func (s *SelectionSetService) currentEnabledIDs() ([]uint, []uint, error) {
	scales, err := s.ScaleRepo.ListEnabled()
	if err != nil {
		return nil, nil, err
	}
	arpeggios, err := s.ArpeggioRepo.ListEnabled()
	if err != nil {
		return nil, nil, err
	}
	scaleIDs := make([]uint, 0, len(scales))
	for _, sc := range scales {
		scaleIDs = append(scaleIDs, sc.ID)
	}
	arpeggioIDs := make([]uint, 0, len(arpeggios))
	for _, a := range arpeggios {
		arpeggioIDs = append(arpeggioIDs, a.ID)
	}
	return scaleIDs, arpeggioIDs, nil
}

// DeactivateAll 取消全部预设激活并停用所有条目
func (s *SelectionSetService) DeactivateAll() error {
	if err := s.SetRepo.DeactivateAll(); err != nil {
		return err
	}
	if err := s.ScaleRepo.DisableAll(); err != nil {
		return err
	}
	return s.ArpeggioRepo.DisableAll()
}
