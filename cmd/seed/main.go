package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"festivalapi/internal/database"
	"festivalapi/internal/domain"
)

// Public open-data export of French festivals.
const feedURL = "https://data.culture.gouv.fr/explore/dataset/festivals-global-festivals-_-pl/download?format=json&timezone=Europe/Berlin&use_labels_for_header=false"

type feedRecord struct {
	Fields struct {
		Identifiant string  `json:"identifiant"`
		Name        string  `json:"nom_du_festival"`
		Discipline  string  `json:"discipline_dominante"`
		Website     *string `json:"site_internet_du_festival"`
		Period      *string `json:"periode_principale_de_deroulement_du_festival"`
		Region      *string `json:"region_principale_de_deroulement"`
		Department  *string `json:"departement_principal_de_deroulement"`
		Commune     *string `json:"commune_principale_de_deroulement"`
		Postcode    *string `json:"code_postal_de_la_commune_principale_de_deroulement"`
	} `json:"fields"`
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "festival.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// ================== STAFF USER ==================
	log.Println("Creating staff user...")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	staff := domain.User{
		Username:     "admin",
		Email:        "admin@festivalapi.fr",
		PasswordHash: string(staffHash),
		IsStaff:      true,
		IsActive:     true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&staff).Error; err != nil {
		log.Fatal("staff user failed:", err)
	}

	// ================== FESTIVALS ==================
	log.Println("Fetching festival feed...")

	festivals, err := fetchFestivals()
	if err != nil {
		log.Fatal("feed fetch failed:", err)
	}

	inserted := 0
	for i := range festivals {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&festivals[i]).Error
		if err != nil {
			log.Printf("skip festival %s: %v", festivals[i].ID, err)
			continue
		}
		inserted++
	}
	log.Printf("festivals upserted: %d/%d", inserted, len(festivals))

	// ================== TICKETING ==================
	log.Println("Creating demo ticket batches...")

	for i, f := range festivals {
		if i >= 5 {
			break
		}
		batch := domain.Ticketing{
			Name:         fmt.Sprintf("%s-early-bird", f.ID),
			FestivalID:   f.ID,
			TotalTickets: 500,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch).Error; err != nil {
			log.Printf("skip batch for %s: %v", f.ID, err)
		}
	}

	log.Println("Seed completed")
}

func fetchFestivals() ([]domain.Festival, error) {
	client := &http.Client{Timeout: 2 * time.Minute}

	resp, err := client.Get(feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var records []feedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}

	festivals := make([]domain.Festival, 0, len(records))
	for _, rec := range records {
		f := rec.Fields
		if f.Identifiant == "" || f.Name == "" {
			continue
		}
		festivals = append(festivals, domain.Festival{
			ID:         f.Identifiant,
			Name:       f.Name,
			Discipline: f.Discipline,
			Website:    f.Website,
			Period:     f.Period,
			Region:     f.Region,
			Department: f.Department,
			Commune:    f.Commune,
			Postcode:   f.Postcode,
		})
	}
	return festivals, nil
}
