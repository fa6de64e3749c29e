// ABOUTME: Handlers for the table, run ledger and request log endpoints.
// ABOUTME: Query parameters other than sysparm_* filter on record fields.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/2389/recgen/internal/errors"
	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/store"
)

const (
	paramLimit        = "sysparm_limit"
	paramOffset       = "sysparm_offset"
	paramNumberPrefix = "sysparm_number_prefix"
)

// tableParam validates the {table} path segment, writing the error itself.
func tableParam(w http.ResponseWriter, r *http.Request) (record.Kind, bool) {
	kind, err := record.ParseKind(chi.URLParam(r, "table"))
	if err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrInvalidTable, err.Error())
		return "", false
	}
	return kind, true
}

// intParam reads a non-negative integer query parameter, 0 when absent.
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		apierrors.WriteErrorWithField(w, http.StatusBadRequest, apierrors.ErrInvalidParam,
			fmt.Sprintf("%s must be a non-negative integer", name), name)
		return 0, false
	}
	return n, true
}

// filterValue maps boolean literals onto how SQLite renders stored JSON booleans.
func filterValue(v string) string {
	switch strings.ToLower(v) {
	case "true":
		return "1"
	case "false":
		return "0"
	}
	return v
}

// listRecords handles GET /api/now/table/{table}
func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	kind, ok := tableParam(w, r)
	if !ok {
		return
	}
	limit, ok := intParam(w, r, paramLimit)
	if !ok {
		return
	}
	offset, ok := intParam(w, r, paramOffset)
	if !ok {
		return
	}

	q := store.Query{
		NumberPrefix: r.URL.Query().Get(paramNumberPrefix),
		Limit:        limit,
		Offset:       offset,
		Fields:       map[string]string{},
	}
	for key, values := range r.URL.Query() {
		if strings.HasPrefix(key, "sysparm_") || len(values) == 0 {
			continue
		}
		q.Fields[key] = filterValue(values[0])
	}

	recs, err := s.store.QueryRecords(r.Context(), kind.String(), q)
	if errors.Is(err, store.ErrInvalidField) {
		apierrors.WriteErrorWithField(w, http.StatusBadRequest, apierrors.ErrInvalidField, err.Error(), fieldOf(err))
		return
	}
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to query records", err.Error())
		return
	}

	result := make([]map[string]any, len(recs))
	for i, rec := range recs {
		result[i] = rec.Fields
	}
	if total, err := s.store.CountRecords(r.Context(), kind.String(), q); err == nil {
		w.Header().Set("X-Total-Count", strconv.Itoa(total))
	}
	writeResult(w, http.StatusOK, result)
}

// fieldOf pulls the quoted field name back out of an ErrInvalidField error.
func fieldOf(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '"'); i >= 0 {
		if name, err := strconv.Unquote(msg[i:]); err == nil {
			return name
		}
	}
	return ""
}

// createRecord handles POST /api/now/table/{table}
func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	kind, ok := tableParam(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusBadRequest, apierrors.ErrInvalidBody,
			"Request body must be a JSON object", err.Error())
		return
	}
	if len(fields) == 0 {
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrInvalidBody, "Request body has no fields")
		return
	}
	// sys_id is assigned by the store.
	delete(fields, "sys_id")

	sysID, err := s.store.CreateRecord(r.Context(), kind.String(), fields)
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to create record", err.Error())
		return
	}
	rec, err := s.store.GetRecord(r.Context(), kind.String(), sysID)
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to read created record", err.Error())
		return
	}

	w.Header().Set("Location", "/api/now/table/"+kind.String()+"/"+sysID)
	writeResult(w, http.StatusCreated, rec.Fields)
}

// getRecord handles GET /api/now/table/{table}/{sys_id}
func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	kind, ok := tableParam(w, r)
	if !ok {
		return
	}

	rec, err := s.store.GetRecord(r.Context(), kind.String(), chi.URLParam(r, "sys_id"))
	if errors.Is(err, store.ErrNotFound) {
		apierrors.WriteError(w, http.StatusNotFound, apierrors.ErrNotFound, "Record not found")
		return
	}
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to read record", err.Error())
		return
	}
	writeResult(w, http.StatusOK, rec.Fields)
}

// listRuns handles GET /api/runs
func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r, paramLimit)
	if !ok {
		return
	}
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to list runs", err.Error())
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	writeResult(w, http.StatusOK, runs)
}

// listRequests handles GET /api/requests
func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r, paramLimit)
	if !ok {
		return
	}
	offset, ok := intParam(w, r, paramOffset)
	if !ok {
		return
	}
	status, ok := intParam(w, r, "status")
	if !ok {
		return
	}

	logs, err := s.store.GetRequestLogs(&store.RequestLogQuery{
		Limit:      limit,
		Offset:     offset,
		Table:      r.URL.Query().Get("table"),
		Method:     strings.ToUpper(r.URL.Query().Get("method")),
		PathPrefix: r.URL.Query().Get("path"),
		StatusCode: status,
	})
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to list requests", err.Error())
		return
	}
	stats, err := s.store.GetRequestLogStats()
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError,
			"Failed to compute request stats", err.Error())
		return
	}
	if logs == nil {
		logs = []*store.RequestLog{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": logs, "stats": stats})
}
