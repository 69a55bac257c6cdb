package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// mappingFlag collects repeated -map local:remote values. Either side may
// be empty: ":7" maps mobile account 7 to a new desktop account, "3" maps
// desktop account 3 to a new mobile account.
type mappingFlag []models.AccountMapping

func (m *mappingFlag) String() string {
	if m == nil {
		return ""
	}
	parts := make([]string, 0, len(*m))
	for _, mapping := range *m {
		remote := ""
		if mapping.RemoteAccountID != nil {
			remote = strconv.FormatInt(*mapping.RemoteAccountID, 10)
		}
		parts = append(parts, fmt.Sprintf("%d:%s", mapping.LocalAccountID, remote))
	}
	return strings.Join(parts, ",")
}

func (m *mappingFlag) Set(s string) error {
	localPart, remotePart, _ := strings.Cut(strings.TrimSpace(s), ":")

	var mapping models.AccountMapping
	if localPart != "" {
		id, err := parseAccountID(localPart)
		if err != nil {
			return fmt.Errorf("desktop account: %w", err)
		}
		mapping.LocalAccountID = id
	}
	if remotePart != "" {
		id, err := parseAccountID(remotePart)
		if err != nil {
			return fmt.Errorf("mobile account: %w", err)
		}
		mapping.RemoteAccountID = &id
	}
	if localPart == "" && remotePart == "" {
		return fmt.Errorf("need a mapping in the form `local:remote`")
	}

	*m = append(*m, mapping)
	return nil
}

func parseAccountID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("account id must be positive, got %d", id)
	}
	return id, nil
}
