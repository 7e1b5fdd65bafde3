package cmd

import (
	"log"

	"github.com/sevginserbest/portal/internal/auth"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	settingsDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/settings"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an initial admin and default apps",
	Long:  `Create the first SUPER_ADMIN account, a starter portal app and the site settings row. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		adminEmail := "admin@example.com"
		var existing userDatamodel.User
		err = gormDB.Where("email = ?", adminEmail).First(&existing).Error
		switch {
		case err == nil:
			log.Printf("admin user already exists: %s", adminEmail)
		case err == gorm.ErrRecordNotFound:
			hash, err := auth.HashPassword("changeme123", cfg.Security.BCryptCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}
			name := "Administrator"
			admin := &userDatamodel.User{
				Email:       adminEmail,
				Name:        &name,
				Password:    hash,
				Role:        string(auth.RoleSuperAdmin),
				Permissions: auth.SerializePermissions(auth.DefaultPermissions(auth.RoleSuperAdmin)),
			}
			if err := gormDB.Create(admin).Error; err != nil {
				log.Fatalf("failed to seed admin user: %v", err)
			}
			log.Printf("seeded admin user: %s", adminEmail)
		default:
			log.Fatalf("failed to check admin user: %v", err)
		}

		apps := []appDatamodel.App{
			{Name: "Documents", Slug: "documents", Type: "internal", IsPublished: true, Order: 1},
			{Name: "Reports", Slug: "reports", Type: "internal", IsPublished: false, Order: 2},
		}
		for i := range apps {
			var count int64
			gormDB.Model(&appDatamodel.App{}).Where("slug = ?", apps[i].Slug).Count(&count)
			if count > 0 {
				continue
			}
			if err := gormDB.Create(&apps[i]).Error; err != nil {
				log.Fatalf("failed to seed app %s: %v", apps[i].Slug, err)
			}
			log.Printf("seeded app: %s", apps[i].Slug)
		}

		site := &settingsDatamodel.SiteSettings{
			ID:       settingsDatamodel.SingletonID,
			SiteName: "Portfolio",
		}
		if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(site).Error; err != nil {
			log.Fatalf("failed to seed site settings: %v", err)
		}

		log.Println("seed complete")
	},
}
