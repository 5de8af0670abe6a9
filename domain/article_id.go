package domain

import "strings"

// ArticleID is the source-namespaced identifier of an article.
type ArticleID struct {
	value string
}

// NewArticleID builds "<short-code>-<nativeID>" after checking that neither
// part can be confused with another source's namespace.
func NewArticleID(source Source, nativeID string) (ArticleID, error) {
	if strings.Contains(nativeID, IDSeparator) {
		return ArticleID{}, newValidationError("native_id", "native ID cannot contain %q separator", IDSeparator)
	}
	if err := source.Validate(); err != nil {
		return ArticleID{}, err
	}
	return ArticleID{value: source.String() + IDSeparator + nativeID}, nil
}

// ArticleIDFromPersisted rehydrates an id that was validated when it was
// first written. It must not be used to create new ids.
func ArticleIDFromPersisted(value string) ArticleID {
	return ArticleID{value: value}
}

// ParseArticleID validates an externally supplied id such as "rd-golang-42".
// Native ids never contain the separator, so the last one splits the source
// short-code from the native id.
func ParseArticleID(raw string) (ArticleID, error) {
	idx := strings.LastIndex(raw, IDSeparator)
	if idx <= 0 || idx == len(raw)-1 {
		return ArticleID{}, newValidationError("id", "malformed article id %q", raw)
	}
	return NewArticleID(ParseSource(raw[:idx]), raw[idx+1:])
}

func (id ArticleID) String() string { return id.value }

func (id ArticleID) IsZero() bool { return id.value == "" }

func (id ArticleID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

func (id *ArticleID) UnmarshalText(text []byte) error {
	*id = ArticleIDFromPersisted(string(text))
	return nil
}
