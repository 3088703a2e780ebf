package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gramseva/matadar/internal/models"
)

// RTDBStore reads voters and name indexes from a hosted realtime database
// over its REST interface: GET {base}/{path}.json, where an absent key
// yields a 200 response with a JSON null body.
type RTDBStore struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewRTDBStore creates a store client for the database at baseURL. authToken
// is appended as the auth query parameter when non-empty. timeout bounds each
// request; zero means no client-side timeout.
func NewRTDBStore(baseURL, authToken string, timeout time.Duration) *RTDBStore {
	return &RTDBStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		client:    &http.Client{Timeout: timeout},
	}
}

func (s *RTDBStore) endpoint(path string) string {
	u := s.baseURL + "/" + path + ".json"
	if s.authToken != "" {
		u += "?auth=" + url.QueryEscape(s.authToken)
	}
	return u
}

// get fetches path and decodes the JSON body into out. A null body maps to
// ErrNotFound.
func (s *RTDBStore) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(path), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("store returned %d: %s", resp.StatusCode, string(b))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return ErrNotFound
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetVoter returns the record stored under voters/{id}.
func (s *RTDBStore) GetVoter(ctx context.Context, id string) (*models.VoterRecord, error) {
	var rec models.VoterRecord
	if err := s.get(ctx, "voters/"+url.PathEscape(id), &rec); err != nil {
		return nil, err
	}
	if rec.VoterID == "" {
		rec.VoterID = id
	}
	return &rec, nil
}

// GetIndex returns the membership map stored under {tier}/{key}.
func (s *RTDBStore) GetIndex(ctx context.Context, tier Tier, key string) (map[string]bool, error) {
	var members map[string]bool
	if err := s.get(ctx, string(tier)+"/"+url.PathEscape(key), &members); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, ErrNotFound
	}
	return members, nil
}

// ListVoters fetches the whole voters subtree. The roll is keyed by voter
// ID; records missing their own ID field inherit the key. Output is sorted
// by voter ID so the substring-scan fallback is deterministic.
func (s *RTDBStore) ListVoters(ctx context.Context) ([]*models.VoterRecord, error) {
	var raw map[string]*models.VoterRecord
	if err := s.get(ctx, "voters", &raw); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	voters := make([]*models.VoterRecord, 0, len(raw))
	for _, id := range ids {
		rec := raw[id]
		if rec == nil {
			continue
		}
		if rec.VoterID == "" {
			rec.VoterID = id
		}
		voters = append(voters, rec)
	}
	return voters, nil
}

// Close releases idle connections.
func (s *RTDBStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
