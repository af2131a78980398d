package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookclub-backend/internal/config"
	"bookclub-backend/internal/database"
	"bookclub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClubData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type MemberData struct {
	Nickname string `yaml:"nickname"`
	Role     string `yaml:"role,omitempty"`
	Contact  string `yaml:"contact,omitempty"`
}

type BookData struct {
	Title          string   `yaml:"title"`
	Author         string   `yaml:"author"`
	RegisteredDate string   `yaml:"registered_date"`
	Notes          string   `yaml:"notes,omitempty"`
	AddedBy        string   `yaml:"added_by,omitempty"`
	Genres         []string `yaml:"genres,omitempty"`
}

type MeetingData struct {
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Time      string   `yaml:"time"`
	Location  string   `yaml:"location,omitempty"`
	Memo      string   `yaml:"memo,omitempty"`
	Attendees []string `yaml:"attendees,omitempty"`
	Books     []string `yaml:"books,omitempty"`
}

// File structures
type ClubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type BooksFile struct {
	Books []BookData `yaml:"books"`
}

type MeetingsFile struct {
	Meetings []MeetingData `yaml:"meetings"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clubs, err := loadClubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	books, err := loadBooks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}

	meetings, err := loadMeetings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load meetings: %w", err)
	}

	// Create the club first; the application is single-tenant so everything
	// below hangs off the first club row.
	club, err := ensureClub(db, clubs)
	if err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}

	// Create members
	memberMap := make(map[string]*models.Member)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, club, memberData)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Nickname, err)
		}
		memberMap[memberData.Nickname] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(members))

	// Create books with their genres
	bookMap := make(map[string]*models.Book)
	bookCreated := 0
	for _, bookData := range books {
		book, created, err := createBook(db, club, bookData, memberMap)
		if err != nil {
			log.Printf("Warning: failed to create book %s: %v", bookData.Title, err)
			continue
		}
		bookMap[bookData.Title] = book
		if created {
			bookCreated++
		}
	}
	log.Printf("Books: %d created, %d total", bookCreated, len(books))

	// Create meetings with attendance rosters and book links
	meetingCreated := 0
	for _, meetingData := range meetings {
		_, created, err := createMeeting(db, club, meetingData, memberMap, bookMap)
		if err != nil {
			log.Printf("Warning: failed to create meeting %s: %v", meetingData.Title, err)
			continue
		}
		if created {
			meetingCreated++
		}
	}
	log.Printf("Meetings: %d created, %d total", meetingCreated, len(meetings))

	return nil
}

func loadClubs(dataDir string) ([]ClubData, error) {
	var all []ClubData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "clubs") {
			var file ClubsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Clubs...)
		}
		return nil
	})

	return all, err
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var all []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Members...)
		}
		return nil
	})

	return all, err
}

func loadBooks(dataDir string) ([]BookData, error) {
	var all []BookData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "books") {
			var file BooksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Books...)
		}
		return nil
	})

	return all, err
}

func loadMeetings(dataDir string) ([]MeetingData, error) {
	var all []MeetingData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "meetings") {
			var file MeetingsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Meetings...)
		}
		return nil
	})

	return all, err
}

// ensureClub returns the existing club row or creates one from the first
// entry in the clubs files (falling back to defaults when no file exists).
func ensureClub(db *gorm.DB, clubs []ClubData) (*models.Club, error) {
	var existing models.Club
	err := db.Order("created_at asc").First(&existing).Error
	if err == nil {
		log.Printf("Club: using existing %q", existing.Name)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	club := models.Club{Name: "우리 북클럽", Description: "기본 북클럽"}
	if len(clubs) > 0 {
		club.Name = clubs[0].Name
		club.Description = clubs[0].Description
	}
	if err := db.Create(&club).Error; err != nil {
		return nil, err
	}
	log.Printf("Club: created %q", club.Name)
	return &club, nil
}

func createMember(db *gorm.DB, club *models.Club, data MemberData) (*models.Member, bool, error) {
	var existing models.Member
	err := db.First(&existing, "club_id = ? AND nickname = ?", club.ID, data.Nickname).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	role := models.MemberRoleMember
	if data.Role != "" {
		role = models.MemberRole(data.Role)
		if !role.IsValid() {
			return nil, false, fmt.Errorf("invalid role %q", data.Role)
		}
	}

	member := models.Member{
		ClubID:   club.ID,
		Nickname: data.Nickname,
		Role:     role,
		Contact:  data.Contact,
	}
	if err := db.Create(&member).Error; err != nil {
		return nil, false, err
	}
	return &member, true, nil
}

func createBook(db *gorm.DB, club *models.Club, data BookData, memberMap map[string]*models.Member) (*models.Book, bool, error) {
	var existing models.Book
	err := db.First(&existing, "club_id = ? AND title = ? AND author = ?", club.ID, data.Title, data.Author).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	registeredDate, err := time.Parse("2006-01-02", data.RegisteredDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid registered_date %q", data.RegisteredDate)
	}

	book := models.Book{
		ClubID:         club.ID,
		Title:          data.Title,
		Author:         data.Author,
		Notes:          data.Notes,
		RegisteredDate: registeredDate,
	}
	if data.AddedBy != "" {
		if member, ok := memberMap[data.AddedBy]; ok {
			book.AddedByID = &member.ID
		}
	}

	createErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		for _, name := range data.Genres {
			var genre models.Genre
			err := tx.First(&genre, "club_id = ? AND name = ?", club.ID, name).Error
			if err == gorm.ErrRecordNotFound {
				genre = models.Genre{ClubID: club.ID, Name: name}
				if err := tx.Create(&genre).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			link := models.BookGenre{BookID: book.ID, GenreID: genre.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if createErr != nil {
		return nil, false, createErr
	}
	return &book, true, nil
}

func createMeeting(db *gorm.DB, club *models.Club, data MeetingData, memberMap map[string]*models.Member, bookMap map[string]*models.Book) (*models.Meeting, bool, error) {
	var existing models.Meeting
	err := db.First(&existing, "club_id = ? AND title = ?", club.ID, data.Title).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	date, err := time.ParseInLocation("2006-01-02T15:04", data.Date+"T"+data.Time, time.Local)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date/time %q %q", data.Date, data.Time)
	}

	meeting := models.Meeting{
		ClubID:   club.ID,
		Title:    data.Title,
		Date:     date,
		Location: data.Location,
		Memo:     data.Memo,
	}

	createErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meeting).Error; err != nil {
			return err
		}
		for _, nickname := range data.Attendees {
			member, ok := memberMap[nickname]
			if !ok {
				log.Printf("Warning: meeting %q attendee %q not found, skipping", data.Title, nickname)
				continue
			}
			att := models.Attendance{
				MeetingID: meeting.ID,
				MemberID:  member.ID,
				Status:    models.AttendanceStatusAttending,
			}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
		}
		for _, title := range data.Books {
			book, ok := bookMap[title]
			if !ok {
				log.Printf("Warning: meeting %q book %q not found, skipping", data.Title, title)
				continue
			}
			link := models.MeetingBook{MeetingID: meeting.ID, BookID: book.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if createErr != nil {
		return nil, false, createErr
	}
	return &meeting, true, nil
}
