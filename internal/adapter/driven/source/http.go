package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/diillson/rewards-dashboard-go/pkg/version"
)

// maxBodySize limita respostas HTTP e objetos S3.
var maxBodySize int64 = 32 << 20

// readLimited lê até limit bytes e falha quando a origem tem mais do que isso.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", types.ErrBodyTooLarge, limit)
	}
	return data, nil
}

func (r *Repository) fetchHTTP(ctx context.Context, location string) ([]entity.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json, application/yaml, text/csv")
	req.Header.Set("User-Agent", "rewards-dashboard/"+version.Version)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	data, err := readLimited(resp.Body, maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	f, ok := formatFromContentType(resp.Header.Get("Content-Type"))
	if !ok {
		u, _ := url.Parse(location)
		if f, err = formatFromName(u.Path); err != nil {
			return nil, err
		}
	}

	return decode(data, f)
}
