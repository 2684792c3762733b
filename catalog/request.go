package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// maxIDsPerRequest is the provider's per-call ceiling for ids parameters.
const maxIDsPerRequest = 50

// searchQuery builds the query string for a search call.
func searchQuery(item SearchItem, keyword string) url.Values {
	return url.Values{
		"q":    {keyword},
		"type": {item.Kind().String()},
	}
}

// idsQuery joins a track-id selection into the ids parameter, enforcing the
// provider's batch ceiling.
func idsQuery(ids []string) (url.Values, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	if len(ids) > maxIDsPerRequest {
		return nil, fmt.Errorf("%w: %d exceeds maximum of %d", ErrTooManyIDs, len(ids), maxIDsPerRequest)
	}

	return url.Values{"ids": {strings.Join(ids, ",")}}, nil
}

// lookupPath templates the item-lookup URL for a kind. Playlists are
// addressed through their owner; ownerID is ignored for other kinds.
func lookupPath(kind Kind, ownerID, id string) string {
	if kind == KindPlaylist {
		return fmt.Sprintf("/users/%s/playlists/%s", url.PathEscape(ownerID), url.PathEscape(id))
	}
	return fmt.Sprintf("/%s/%s", kind.Plural(), url.PathEscape(id))
}
