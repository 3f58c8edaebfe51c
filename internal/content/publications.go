package content

import (
	"context"
	"sort"
	"strings"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// PublicationFilter narrows and orders the publications listing. Published
// and Accepted are tri-state: nil means "do not filter".
type PublicationFilter struct {
	Year      int
	Published *bool
	Accepted  *bool
	Author    string
	Journal   string
	SortBy    string // year, title, key
	Desc      bool
	Limit     int
}

func publicationFromRow(row store.Row) types.Publication {
	return types.Publication{
		ID:        row.String(store.IDKey),
		Key:       row.String("key"),
		Title:     row.String("title"),
		Authors:   row.Strings("authors"),
		Journal:   row.String("journal"),
		Volume:    row["volume"],
		Number:    row["number"],
		Pages:     row["pages"],
		Year:      row.Int("year"),
		ArticleID: row.String("article_id"),
		Published: row.Bool("published"),
		Accepted:  row.Bool("accepted"),
		DOI:       row.String("doi"),
	}
}

// Publications lists papers with optional filtering and sorting.
func (s *Service) Publications(ctx context.Context, filter PublicationFilter) ([]types.Publication, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.collection(ctx, "papers")
	if err != nil {
		return nil, err
	}

	publications := make([]types.Publication, 0, len(rows))
	for _, row := range rows {
		pub := publicationFromRow(row)

		if filter.Year != 0 && pub.Year != filter.Year {
			continue
		}
		if filter.Published != nil && pub.Published != *filter.Published {
			continue
		}
		if filter.Accepted != nil && pub.Accepted != *filter.Accepted {
			continue
		}
		if filter.Author != "" && !authorMatches(pub.Authors, filter.Author) {
			continue
		}
		if filter.Journal != "" &&
			!strings.Contains(strings.ToLower(pub.Journal), strings.ToLower(filter.Journal)) {
			continue
		}

		publications = append(publications, pub)
	}

	sort.SliceStable(publications, func(i, j int) bool {
		var cmp int
		switch filter.SortBy {
		case "title":
			cmp = strings.Compare(publications[i].Title, publications[j].Title)
		case "key":
			cmp = strings.Compare(publications[i].Key, publications[j].Key)
		default: // year
			cmp = publications[i].Year - publications[j].Year
		}
		return direction(cmp, filter.Desc)
	})

	return applyLimit(publications, filter.Limit), nil
}

// Publication fetches one paper by its record ID.
func (s *Service) Publication(ctx context.Context, id string) (types.Publication, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row, err := s.store.GetByKey(ctx, s.base, "papers", id)
	if err != nil {
		return types.Publication{}, err
	}

	return publicationFromRow(row), nil
}

func authorMatches(authors []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, author := range authors {
		if strings.Contains(strings.ToLower(author), needle) {
			return true
		}
	}
	return false
}
