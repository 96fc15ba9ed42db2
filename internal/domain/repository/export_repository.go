package repository

import (
	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.RewardsReport, filename string, outputDir string) ([]string, error)
	ExportToJSON(report entity.RewardsReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.RewardsReport, filename string, outputDir string) (string, error)
}
