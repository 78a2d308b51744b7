package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shop/internal/models"
	"shop/internal/repositories"
)

// ImportResult aggregates the per-row outcomes of one CSV import.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	FailedCount  int      `json:"failed_count"`
	Errors       []string `json:"errors,omitempty"`
}

// ImportService bulk-loads users and products from CSV. Row failures are
// collected into the result; a bad row never aborts the rest of the file.
type ImportService struct {
	userRepo     repositories.UserRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewImportService creates a new ImportService.
func NewImportService(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
) *ImportService {
	return &ImportService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ImportUsers reads user rows (name, email, bonus points, role) from CSV
// data with a header line. Imported users are active and have no password.
func (s *ImportService) ImportUsers(r io.Reader) (*ImportResult, error) {
	result := &ImportResult{}

	rows, err := readCSV(r, result)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if len(row.fields) < 4 {
			row.fail(result, "invalid format (expected 4 columns)")
			continue
		}

		name := strings.TrimSpace(row.fields[0])
		email := strings.TrimSpace(row.fields[1])

		if name == "" {
			row.fail(result, "name is required")
			continue
		}
		if email == "" || !strings.Contains(email, "@") {
			row.fail(result, "invalid email")
			continue
		}

		points, err := decimal.NewFromString(strings.TrimSpace(row.fields[2]))
		if err != nil || points.IsNegative() {
			row.fail(result, "invalid bonus points")
			continue
		}

		role, ok := models.ParseUserRole(row.fields[3])
		if !ok {
			row.fail(result, fmt.Sprintf("unknown role %q", strings.TrimSpace(row.fields[3])))
			continue
		}

		user := &models.User{
			Name:        name,
			Email:       email,
			BonusPoints: points,
			Role:        role,
			IsActive:    true,
		}
		if _, err := s.userRepo.Create(user); err != nil {
			row.fail(result, err.Error())
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

// ImportProducts reads product rows (name, category, description, price,
// stock) from CSV data with a header line. Categories are resolved by
// name, case-insensitively, against the existing categories.
func (s *ImportService) ImportProducts(r io.Reader) (*ImportResult, error) {
	result := &ImportResult{}

	rows, err := readCSV(r, result)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for import: %w", err)
	}
	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		categoryIDs[strings.ToLower(c.Name)] = c.ID
	}

	for _, row := range rows {
		if len(row.fields) < 5 {
			row.fail(result, "invalid format (expected 5 columns)")
			continue
		}

		name := strings.TrimSpace(row.fields[0])
		if name == "" {
			row.fail(result, "name is required")
			continue
		}

		categoryName := strings.TrimSpace(row.fields[1])
		categoryID, ok := categoryIDs[strings.ToLower(categoryName)]
		if !ok {
			row.fail(result, fmt.Sprintf("category %q not found", categoryName))
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(row.fields[3]))
		if err != nil {
			row.fail(result, "invalid price")
			continue
		}
		if !price.IsPositive() {
			row.fail(result, "price must be greater than 0")
			continue
		}

		stock, err := strconv.Atoi(strings.TrimSpace(row.fields[4]))
		if err != nil || stock < 0 {
			row.fail(result, "invalid stock quantity")
			continue
		}

		description := strings.TrimSpace(row.fields[2])
		product := &models.Product{
			Name:          name,
			CategoryID:    categoryID,
			Price:         price,
			StockQuantity: stock,
			IsAvailable:   true,
		}
		if description != "" {
			product.Description = &description
		}
		if _, err := s.productRepo.Create(product); err != nil {
			row.fail(result, err.Error())
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

// csvRow keeps a data row together with its 1-based line number in the
// source file, for error messages.
type csvRow struct {
	line   int
	fields []string
}

func (r csvRow) fail(result *ImportResult, msg string) {
	result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", r.line, msg))
	result.FailedCount++
}

// readCSV reads all records, skipping the header line and blank lines.
// Files without any data rows are reported through the result, matching
// how individual row failures surface.
func readCSV(r io.Reader, result *ImportResult) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV data: %w", err)
	}

	if len(records) < 2 {
		result.Errors = append(result.Errors, "CSV data is empty or has no data rows")
		return nil, nil
	}

	rows := make([]csvRow, 0, len(records)-1)
	for i, fields := range records[1:] {
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		rows = append(rows, csvRow{line: i + 2, fields: fields})
	}
	return rows, nil
}
