package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

type stubPage struct {
	prev, next string
}

func (p stubPage) PreviousLink() string { return p.prev }
func (p stubPage) NextLink() string     { return p.next }

func TestRespondPage_RecordsLinkRelations(t *testing.T) {
	prev := testutil.ToFloat64(pagination.LinkRelationsTotal.WithLabelValues(string(linkheader.Prev)))
	next := testutil.ToFloat64(pagination.LinkRelationsTotal.WithLabelValues(string(linkheader.Next)))

	rec := httptest.NewRecorder()
	page := stubPage{next: "http://example.com/?cursor=cD01"}
	respondPage(rec, pagination.StrategyCursor, page, []int{1, 2}, linkheader.HeaderOnly)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<http://example.com/?cursor=cD01>; rel="next"`, rec.Header().Get(linkheader.HeaderName))
	assert.Equal(t, next+1, testutil.ToFloat64(pagination.LinkRelationsTotal.WithLabelValues(string(linkheader.Next))))
	assert.Equal(t, prev, testutil.ToFloat64(pagination.LinkRelationsTotal.WithLabelValues(string(linkheader.Prev))))
}
