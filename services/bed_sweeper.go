package services

import (
	"encoding/json"
	"time"

	"clinic/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BedSweeper quét và giải phóng các giường đã hết hạn bảo trì
type BedSweeper struct {
	beds   *BedService
	logger logger.Logger
}

type BedSweeperOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBedSweeper(opts BedSweeperOptions) *BedSweeper {
	l := opts.Logger
	if l == nil {
		l = logger.NewComponentLogger(logger.InfoLevel, "sweeper")
	}
	return &BedSweeper{
		beds:   NewBedService(opts.DB),
		logger: l,
	}
}

// ReclaimExpiredBeds giải phóng giường hết hạn bảo trì và thông báo qua
// websocket cho các màn hình điều phối đang mở
func (s *BedSweeper) ReclaimExpiredBeds(m *melody.Melody) error {
	reclaimed, err := s.beds.ReclaimExpired(time.Now())
	if err != nil {
		s.logger.Error("Lỗi khi giải phóng giường hết hạn bảo trì: %v", err)
		return err
	}

	if reclaimed == 0 {
		return nil
	}

	s.logger.Info("Đã giải phóng %d giường hết hạn bảo trì", reclaimed)

	if m != nil {
		message, err := json.Marshal(map[string]interface{}{
			"event":     "beds_reclaimed",
			"reclaimed": reclaimed,
		})
		if err == nil {
			if err := m.Broadcast(message); err != nil {
				s.logger.Error("Lỗi khi broadcast thông báo giường: %v", err)
			}
		}
	}

	return nil
}
