package source

import (
	"fmt"
	"os"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

func readFile(filePath string) ([]entity.Transaction, error) {
	f, err := formatFromName(filePath)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing transactions file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}

	return decode(data, f)
}
