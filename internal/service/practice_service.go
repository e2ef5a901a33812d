package service

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/selector"
	"scales_practice_backend/pkg/logger"
	"scales_practice_backend/pkg/monitoring"
)

// PracticeService 练习集生成与练习记录的编排层：
// 读当前目录和历史快照，交给 selector 纯计算，结果原样返回
type PracticeService struct {
	ScaleRepo    *repository.ScaleRepository
	ArpeggioRepo *repository.ArpeggioRepository
	PracticeRepo *repository.PracticeRepository
	SettingRepo  *repository.SettingRepository

	// 测试钩子：缺省为每次调用新建时间种子随机源
	newRand func() *rand.Rand
	now     func() time.Time
}

func NewPracticeService(
	scaleRepo *repository.ScaleRepository,
	arpeggioRepo *repository.ArpeggioRepository,
	practiceRepo *repository.PracticeRepository,
	settingRepo *repository.SettingRepository,
) *PracticeService {
	return &PracticeService{
		ScaleRepo:    scaleRepo,
		ArpeggioRepo: arpeggioRepo,
		PracticeRepo: practiceRepo,
		SettingRepo:  settingRepo,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// PracticeEntryInput 提交练习记录时的单个条目
type PracticeEntryInput struct {
	ItemType          string  `json:"item_type" binding:"required"`
	ItemID            uint    `json:"item_id" binding:"required"`
	Articulation      *string `json:"articulation"`
	WasPracticed      bool    `json:"was_practiced"`
	PracticedSlurred  bool    `json:"practiced_slurred"`
	PracticedSeparate bool    `json:"practiced_separate"`
	PracticedBPM      *int    `json:"practiced_bpm"`
	TargetBPM         *int    `json:"target_bpm"`
	MatchedTargetBPM  *bool   `json:"matched_target_bpm"`
}

// SessionSummary 练习记录的创建回执
type SessionSummary struct {
	ID             uint      `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	EntriesCount   int       `json:"entries_count"`
	PracticedCount int       `json:"practiced_count"`
}

// HistoryItem 单条目的练习历史统计
type HistoryItem struct {
	ItemType        string     `json:"item_type"`
	ItemID          uint       `json:"item_id"`
	DisplayName     string     `json:"display_name"`
	TotalSessions   int        `json:"total_sessions"`
	TimesPracticed  int        `json:"times_practiced"`
	LastPracticed   *time.Time `json:"last_practiced"`
	MaxPracticedBPM *int       `json:"max_practiced_bpm"`
	TargetBPM       *int       `json:"target_bpm"`
}

// GeneratePracticeSet 按当前配置生成一份练习集。
// 每次调用独立建随机源，请求间无共享可变状态。
func (s *PracticeService) GeneratePracticeSet() (selector.Result, error) {
	cfg, err := s.SettingRepo.GetAlgorithmConfig()
	if err != nil {
		return selector.Result{}, err
	}

	candidates, err := s.loadCandidates()
	if err != nil {
		return selector.Result{}, err
	}

	sel := selector.New(s.newRand(), s.now())
	result, err := sel.Generate(candidates, cfg)
	if err != nil {
		return selector.Result{}, err
	}

	outcome := "ok"
	switch {
	case result.EmptyCatalog:
		outcome = "empty"
	case result.Shortfall > 0:
		outcome = "partial"
	}
	monitoring.PracticeSetCounter.WithLabelValues(outcome).Inc()
	monitoring.PracticeSetSize.Observe(float64(len(result.Items)))

	if result.Shortfall > 0 {
		logger.Log.Info("Practice set generated with shortfall",
			zap.Int("requested", result.Requested),
			zap.Int("returned", len(result.Items)))
	}
	return result, nil
}

// loadCandidates 读取启用条目及其历史聚合，组装成选取候选
func (s *PracticeService) loadCandidates() ([]selector.Candidate, error) {
	scaleStats, err := s.PracticeRepo.StatsByItemType(model.ItemTypeScale)
	if err != nil {
		return nil, err
	}
	arpeggioStats, err := s.PracticeRepo.StatsByItemType(model.ItemTypeArpeggio)
	if err != nil {
		return nil, err
	}

	var candidates []selector.Candidate

	scales, err := s.ScaleRepo.ListEnabled()
	if err != nil {
		return nil, err
	}
	for _, scale := range scales {
		stats := scaleStats[scale.ID]
		candidates = append(candidates, selector.Candidate{
			ItemType:         model.ItemTypeScale,
			ItemID:           scale.ID,
			DisplayName:      scale.DisplayName(),
			Note:             scale.Note,
			Category:         scale.Type,
			Octaves:          scale.Octaves,
			StaticWeight:     scale.Weight,
			TargetBPM:        scale.TargetBPM,
			ArticulationMode: scale.ArticulationMode,
			PracticeCount:    stats.TimesPracticed,
			LastPracticedAt:  stats.LastPracticedAt,
		})
	}

	arpeggios, err := s.ArpeggioRepo.ListEnabled()
	if err != nil {
		return nil, err
	}
	for _, arpeggio := range arpeggios {
		stats := arpeggioStats[arpeggio.ID]
		candidates = append(candidates, selector.Candidate{
			ItemType:         model.ItemTypeArpeggio,
			ItemID:           arpeggio.ID,
			DisplayName:      arpeggio.DisplayName(),
			Note:             arpeggio.Note,
			Category:         arpeggio.Type,
			Octaves:          arpeggio.Octaves,
			StaticWeight:     arpeggio.Weight,
			TargetBPM:        arpeggio.TargetBPM,
			ArticulationMode: arpeggio.ArticulationMode,
			PracticeCount:    stats.TimesPracticed,
			LastPracticedAt:  stats.LastPracticedAt,
		})
	}

	return candidates, nil
}

// RecordSession 写入练习记录。was_practiced 由逐演奏法标记推导
func (s *PracticeService) RecordSession(entries []PracticeEntryInput) (*SessionSummary, error) {
	session := &model.PracticeSession{}

	practicedCount := 0
	for _, input := range entries {
		wasPracticed := input.WasPracticed || input.PracticedSlurred || input.PracticedSeparate
		if wasPracticed {
			practicedCount++
		}
		session.Entries = append(session.Entries, model.PracticeEntry{
			ItemType:          input.ItemType,
			ItemID:            input.ItemID,
			Articulation:      input.Articulation,
			WasPracticed:      wasPracticed,
			PracticedSlurred:  input.PracticedSlurred,
			PracticedSeparate: input.PracticedSeparate,
			PracticedBPM:      input.PracticedBPM,
			TargetBPM:         input.TargetBPM,
			MatchedTargetBPM:  input.MatchedTargetBPM,
		})
	}

	if err := s.PracticeRepo.CreateSession(session); err != nil {
		return nil, err
	}

	return &SessionSummary{
		ID:             session.ID,
		CreatedAt:      session.CreatedAt,
		EntriesCount:   len(entries),
		PracticedCount: practicedCount,
	}, nil
}

// History 全部启用条目的练习统计，练得最少的排最前
func (s *PracticeService) History(itemType string) ([]HistoryItem, error) {
	var history []HistoryItem

	if itemType == "" || itemType == model.ItemTypeScale {
		stats, err := s.PracticeRepo.StatsByItemType(model.ItemTypeScale)
		if err != nil {
			return nil, err
		}
		scales, err := s.ScaleRepo.ListEnabled()
		if err != nil {
			return nil, err
		}
		for _, scale := range scales {
			st := stats[scale.ID]
			history = append(history, HistoryItem{
				ItemType:        model.ItemTypeScale,
				ItemID:          scale.ID,
				DisplayName:     scale.DisplayName(),
				TotalSessions:   st.TotalSessions,
				TimesPracticed:  st.TimesPracticed,
				LastPracticed:   st.LastPracticedAt,
				MaxPracticedBPM: st.MaxPracticedBPM,
				TargetBPM:       scale.TargetBPM,
			})
		}
	}

	if itemType == "" || itemType == model.ItemTypeArpeggio {
		stats, err := s.PracticeRepo.StatsByItemType(model.ItemTypeArpeggio)
		if err != nil {
			return nil, err
		}
		arpeggios, err := s.ArpeggioRepo.ListEnabled()
		if err != nil {
			return nil, err
		}
		for _, arpeggio := range arpeggios {
			st := stats[arpeggio.ID]
			history = append(history, HistoryItem{
				ItemType:        model.ItemTypeArpeggio,
				ItemID:          arpeggio.ID,
				DisplayName:     arpeggio.DisplayName(),
				TotalSessions:   st.TotalSessions,
				TimesPracticed:  st.TimesPracticed,
				LastPracticed:   st.LastPracticedAt,
				MaxPracticedBPM: st.MaxPracticedBPM,
				TargetBPM:       arpeggio.TargetBPM,
			})
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].TimesPracticed < history[j].TimesPracticed
	})
	return history, nil
}
