package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BedReclaimer định nghĩa interface cho việc giải phóng giường hết hạn bảo trì
type BedReclaimer interface {
	ReclaimExpiredBeds(m *melody.Melody) error
}

var bedReclaimer BedReclaimer

// SetBedReclaimer thiết lập implementation cho BedReclaimer
func SetBedReclaimer(reclaimer BedReclaimer) {
	bedReclaimer = reclaimer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét giường hết hạn bảo trì mỗi 5 phút
	_, err := c.AddFunc("*/5 * * * *", func() {
		if bedReclaimer == nil {
			log.Printf("Lỗi: BedReclaimer chưa được thiết lập")
			return
		}
		if err := bedReclaimer.ReclaimExpiredBeds(m); err != nil {
			log.Printf("Lỗi khi giải phóng giường hết hạn bảo trì: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
