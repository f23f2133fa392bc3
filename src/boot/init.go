package boot

import (
	"log"
	"rtm/src/common"
	"rtm/src/db"
	"rtm/src/lib"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"rtm/src/models"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.WaitlistEntry{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the background sweep that clears yesterday's
// leftover waitlist entries. Everything else in the service runs
// synchronously per request.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	j, err := sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(common.ExpireStaleWaitlistEntries),
	)
	if err != nil {
		log.Printf("Error running job: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled waitlist sweep: %s\n", j.ID().String())
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
