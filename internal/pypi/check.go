package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/airlift-sh/airlift/internal/messages"
)

// Project is the PyPI project whose releases are checked.
const Project = "apache-airflow"

var latestReleaseURL = "https://pypi.org/pypi/" + Project + "/json"
var httpClient = &http.Client{Timeout: 10 * time.Second}
var retryDelay = 250 * time.Millisecond

const fetchLatestRetryCount = 1

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Pinned   string
	Latest   string
	Outdated bool
}

// Check fetches the latest apache-airflow release from PyPI and compares
// it to the configured version pin. An empty pin skips the comparison and
// only reports the latest release.
func Check(ctx context.Context, pinnedVersion string) (CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	latest, err := fetchLatestReleaseVersion(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{Pinned: pinnedVersion, Latest: latest}
	if pinnedVersion == "" {
		return result, nil
	}

	pinned, err := semver.NewVersion(pinnedVersion)
	if err != nil {
		return CheckResult{}, fmt.Errorf(messages.PypiInvalidPinFmt, pinnedVersion, err)
	}
	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		return CheckResult{}, fmt.Errorf(messages.PypiInvalidReleaseFmt, latest, err)
	}
	result.Outdated = pinned.LessThan(latestVersion)
	return result, nil
}

type releaseResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// fetchLatestReleaseVersion returns the latest release version from the
// PyPI project metadata.
func fetchLatestReleaseVersion(ctx context.Context) (string, error) {
	for attempt := 0; attempt <= fetchLatestRetryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
		if err != nil {
			return "", fmt.Errorf(messages.PypiCreateRequestErrFmt, err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "airlift")

		resp, err := httpClient.Do(req)
		if err != nil {
			if shouldRetryLatestCheck(err, 0, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return "", fmt.Errorf(messages.PypiFetchReleaseErrFmt, err)
		}

		if resp.StatusCode != http.StatusOK {
			status := resp.StatusCode
			statusText := resp.Status
			_ = resp.Body.Close()
			if shouldRetryLatestCheck(nil, status, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return "", fmt.Errorf(messages.PypiFetchStatusFmt, statusText)
		}

		var payload releaseResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			_ = resp.Body.Close()
			return "", fmt.Errorf(messages.PypiDecodeReleaseErrFmt, err)
		}
		_ = resp.Body.Close()
		if strings.TrimSpace(payload.Info.Version) == "" {
			return "", errors.New(messages.PypiReleaseMissingVersion)
		}
		return strings.TrimSpace(payload.Info.Version), nil
	}

	return "", fmt.Errorf(messages.PypiFetchReleaseErrFmt, errors.New("retry budget exhausted"))
}

func shouldRetryLatestCheck(err error, statusCode int, attempt int) bool {
	if attempt >= fetchLatestRetryCount {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	return statusCode >= 500 && statusCode <= 599
}
