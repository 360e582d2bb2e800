package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronov/digital-library/internal/db"
	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/middlewares"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/repositories"
	"github.com/avoronov/digital-library/internal/services"
	"github.com/avoronov/digital-library/internal/validation"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "libraryctl",
	Short:         "Admin utility for the digital library service",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		conn, migrationsDir, _, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.ApplyMigrations(ctx, conn, migrationsDir); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}

		fmt.Println("Migrations applied.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo accounts and catalog",
	Long: `Applies migrations and loads the demo data set: one librarian account
(admin/admin123), three reader accounts and eight books. Does nothing
when the admin account already exists.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		conn, migrationsDir, jwtSecret, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.ApplyMigrations(ctx, conn, migrationsDir); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}

		return seed(ctx, conn, jwtSecret)
	},
}

var createLibrarianCmd = &cobra.Command{
	Use:   "create-librarian",
	Short: "Interactively create a librarian account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		conn, _, jwtSecret, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		return createLibrarian(ctx, conn, jwtSecret)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "path to configuration file")
	rootCmd.AddCommand(migrateCmd, seedCmd, createLibrarianCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// connect loads the environment file and opens the PostgreSQL pool.
// It shares the server's POSTGRES_*, MIGRATIONS_DIR and JWT_SECRET_KEY keys.
func connect(ctx context.Context) (*sqlx.DB, string, string, error) {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "library"),
	)

	conn, err := db.Connect(ctx, dsn, 4, 2)
	if err != nil {
		return nil, "", "", fmt.Errorf("PostgreSQL connection error: %w", err)
	}

	return conn, getEnv("MIGRATIONS_DIR", "migrations"), getEnv("JWT_SECRET_KEY", "my_super_secret_key"), nil
}

// newAuthService wires the auth service the same way the server does.
// The token generator is required by the constructor but never used here.
func newAuthService(conn *sqlx.DB, jwtSecret string) *services.AuthService {
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn, middlewares.GetTxFromContext)
	tokener := jwt.New(jwtSecret, time.Hour)
	return services.NewAuthService(userReadRepo, userWriteRepo, tokener)
}

// seed loads the demo accounts and catalog, skipping when already present.
func seed(ctx context.Context, conn *sqlx.DB, jwtSecret string) error {
	userReadRepo := repositories.NewUserReadRepository(conn)

	existing, err := userReadRepo.GetByIdentifier(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("Database already seeded, nothing to do.")
		return nil
	}

	fmt.Println("Creating sample data...")

	authService := newAuthService(conn, jwtSecret)

	accounts := []struct {
		username, email, password, role string
	}{
		{"admin", "admin@library.com", "admin123", models.RoleLibrarian},
		{"john_doe", "john@student.com", "student123", models.RoleReader},
		{"jane_smith", "jane@student.com", "student123", models.RoleReader},
		{"bob_wilson", "bob@student.com", "student123", models.RoleReader},
	}

	for _, a := range accounts {
		if _, err := authService.Register(ctx, a.username, a.email, a.password, a.role); err != nil {
			return fmt.Errorf("seeding user %s: %w", a.username, err)
		}
	}

	// Fixtures are already normalized, so they go straight to the repository.
	bookWriteRepo := repositories.NewBookWriteRepository(conn, middlewares.GetTxFromContext)

	books := []models.BookDB{
		{
			Title:           "Python Programming",
			Author:          "John Smith",
			ISBN:            "9781234567897",
			Category:        "Technology",
			Description:     "A comprehensive guide to Python programming for beginners and experts.",
			PublicationYear: 2023,
			TotalCopies:     5,
		},
		{
			Title:           "Web Development Fundamentals",
			Author:          "Sarah Johnson",
			ISBN:            "9781234567898",
			Category:        "Technology",
			Description:     "Learn HTML, CSS, JavaScript, and modern web development practices.",
			PublicationYear: 2022,
			TotalCopies:     4,
		},
		{
			Title:           "Data Science Essentials",
			Author:          "Michael Brown",
			ISBN:            "9781234567899",
			Category:        "Science",
			Description:     "Master data analysis, visualization, and machine learning basics.",
			PublicationYear: 2023,
			TotalCopies:     3,
		},
		{
			Title:           "The Great Gatsby",
			Author:          "F. Scott Fitzgerald",
			ISBN:            "9780743273565",
			Category:        "Fiction",
			Description:     "A classic American novel set in the Jazz Age.",
			PublicationYear: 1925,
			TotalCopies:     6,
		},
		{
			Title:           "1984",
			Author:          "George Orwell",
			ISBN:            "9780451524935",
			Category:        "Fiction",
			Description:     "A dystopian social science fiction novel.",
			PublicationYear: 1949,
			TotalCopies:     5,
		},
		{
			Title:           "Sapiens",
			Author:          "Yuval Noah Harari",
			ISBN:            "9780062316097",
			Category:        "History",
			Description:     "A brief history of humankind from the Stone Age to modern times.",
			PublicationYear: 2011,
			TotalCopies:     4,
		},
		{
			Title:           "Atomic Habits",
			Author:          "James Clear",
			ISBN:            "9780735211292",
			Category:        "Self-Help",
			Description:     "An easy and proven way to build good habits and break bad ones.",
			PublicationYear: 2018,
			TotalCopies:     7,
		},
		{
			Title:           "The Lean Startup",
			Author:          "Eric Ries",
			ISBN:            "9780307887894",
			Category:        "Business",
			Description:     "How constant innovation creates radically successful businesses.",
			PublicationYear: 2011,
			TotalCopies:     3,
		},
	}

	for _, b := range books {
		b.CoverImage = "default_book.jpg"
		b.AvailableCopies = b.TotalCopies
		if _, err := bookWriteRepo.Create(ctx, b); err != nil {
			return fmt.Errorf("seeding book %q: %w", b.Title, err)
		}
	}

	fmt.Println("Sample data created successfully!")
	fmt.Println()
	fmt.Println("Login Credentials:")
	fmt.Println("Librarian - Username: admin, Password: admin123")
	fmt.Println("Reader - Username: john_doe, Password: student123")
	return nil
}

// createLibrarian prompts for account details and registers a librarian.
func createLibrarian(ctx context.Context, conn *sqlx.DB, jwtSecret string) error {
	sc := bufio.NewScanner(os.Stdin)

	username, err := promptLine(sc, "Username: ")
	if err != nil {
		return err
	}
	email, err := promptLine(sc, "Email: ")
	if err != nil {
		return err
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	fmt.Printf("Password strength: %s\n", validation.ClassifyPassword(password))

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	authService := newAuthService(conn, jwtSecret)

	user, err := authService.Register(ctx, username, email, password, models.RoleLibrarian)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return err
		case errors.Is(err, services.ErrUserAlreadyExists):
			return fmt.Errorf("username or email already taken")
		default:
			return fmt.Errorf("creating librarian: %w", err)
		}
	}

	fmt.Printf("Librarian account %s created (id %s)\n", user.Username, user.UserID)
	return nil
}

func promptLine(sc *bufio.Scanner, prompt string) (string, error) {
	fmt.Print(prompt)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(sc.Text()), nil
}

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}
