package services

import (
	"sort"

	"github.com/nexpay/nexpay-backend/internal/models"
	repo "github.com/nexpay/nexpay-backend/internal/repository"
)

// StatsService computes the aggregate numbers behind the admin dashboard.
// Everything is derived on demand from the directory and ledger.
type StatsService struct {
	dir repo.Directory
	led repo.Ledger
}

func NewStatsService(dir repo.Directory, led repo.Ledger) *StatsService {
	return &StatsService{dir: dir, led: led}
}

type Overview struct {
	TotalVolume       int64 `json:"total_volume"`
	TotalTransactions int   `json:"total_transactions"`
	TotalUsers        int   `json:"total_users"`
	TotalMerchants    int   `json:"total_merchants"`
}

func (s *StatsService) Overview() Overview {
	txs := s.led.ListAll()
	users := s.dir.List()

	var out Overview
	for _, tx := range txs {
		out.TotalVolume += tx.Amount
	}
	out.TotalTransactions = len(txs)
	out.TotalUsers = len(users)
	for _, u := range users {
		if u.Role == models.RoleMerchant {
			out.TotalMerchants++
		}
	}
	return out
}

type DailyBucket struct {
	Date   string `json:"date"` // yyyy-mm-dd
	Count  int    `json:"count"`
	Volume int64  `json:"volume"`
}

// Daily buckets the history per calendar day, oldest day first.
func (s *StatsService) Daily() []DailyBucket {
	byDay := map[string]*DailyBucket{}
	for _, tx := range s.led.ListAll() {
		day := tx.CreatedAt.Format("2006-01-02")
		b, ok := byDay[day]
		if !ok {
			b = &DailyBucket{Date: day}
			byDay[day] = b
		}
		b.Count++
		b.Volume += tx.Amount
	}

	out := make([]DailyBucket, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Settlement counts transactions per settlement mode.
func (s *StatsService) Settlement() map[models.SettlementMode]int {
	out := map[models.SettlementMode]int{
		models.SettlementInstant:  0,
		models.SettlementStandard: 0,
	}
	for _, tx := range s.led.ListAll() {
		out[tx.SettlementMode]++
	}
	return out
}

// UserRatio counts users per role.
func (s *StatsService) UserRatio() map[models.Role]int {
	out := map[models.Role]int{
		models.RoleCustomer: 0,
		models.RoleMerchant: 0,
		models.RoleAdmin:    0,
	}
	for _, u := range s.dir.List() {
		out[u.Role]++
	}
	return out
}
