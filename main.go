package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/certward/certward-api/api"
	"github.com/certward/certward-api/common/config"
	"github.com/certward/certward-api/common/gorm"
	"github.com/certward/certward-api/common/mongo"
	"github.com/certward/certward-api/common/util"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isPullDB := flag.Bool("PullDB", false, "Run database pulling")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()
	config.LoadConfig()
	if *isPushDB || *isPullDB {
		if *isPullDB {
			gorm.Pull_db()
		}
		if *isPushDB {
			gorm.Push_db()
		}
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}

	util.InitDialer()
	util.StartArchiveCleanupJob()

	api.InitFiber()
}
