// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Francesca993/VanCommunity/internal/platform/request"
	"github.com/Francesca993/VanCommunity/internal/platform/respond"
	"github.com/Francesca993/VanCommunity/internal/platform/validate"
	"github.com/Francesca993/VanCommunity/pkg/pointer"
)

// # Handler Implementation

// Handler implements the HTTP layer for the group catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new group [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with group-related endpoints.
// It is mounted under /api/groups.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/search", handler.searchGroups)
	router.Post("/{id}/join", handler.joinGroup)
	router.Post("/", handler.createGroup)

	return router
}

// # Request Bodies

// Pointer fields tell an omitted field apart from its zero value.

type searchRequest struct {
	Age    *int     `json:"age"`
	Date   *string  `json:"date"`
	Styles []string `json:"styles"`
	HasVan *bool    `json:"has_van"`
}

type joinRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

type createRequest struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Date      *string  `json:"date"`
	MinAge    *int     `json:"min_age"`
	MaxAge    *int     `json:"max_age"`
	Styles    []string `json:"styles"`
	SpotsFree *int     `json:"spots_free"`
	Image     *string  `json:"image"`
}

// # Group Endpoints

/*
POST /api/groups/search.

Description: Finds groups compatible with the traveller's age, date and styles.

Request (Body):
  - age: int (required)
  - date: string (optional, exact match)
  - styles: []string (optional, any overlap)
  - has_van: bool (accepted, not used for filtering)

Response:
  - 200: []Group: Matching groups, possibly empty
  - 400: VALIDATION_ERROR: Invalid body
*/
func (handler *Handler) searchGroups(writer http.ResponseWriter, request *http.Request) {
	var input searchRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Present(FieldAge, input.Age != nil)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	criteria := SearchCriteria{
		Age:    *input.Age,
		Date:   pointer.Val(input.Date),
		Styles: input.Styles,
		HasVan: pointer.Val(input.HasVan),
	}

	groups, err := handler.service.Search(request.Context(), criteria)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
POST /api/groups/{id}/join.

Description: Reserves one spot in the group and returns its contact link.
A full group answers 200 with success=false.

Request:
  - id: string (Group id)
  - body: { "name": string, "age": int }

Response:
  - 200: JoinResult: Outcome of the attempt
  - 400: VALIDATION_ERROR: Invalid body
  - 404: NOT_FOUND: Group not found
*/
func (handler *Handler) joinGroup(writer http.ResponseWriter, request *http.Request) {
	groupID := requestutil.Param(request, "id")

	var input joinRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Present(FieldName, input.Name != nil).
		Present(FieldAge, input.Age != nil)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Join(request.Context(), groupID, Joiner{Name: *input.Name, Age: *input.Age})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/groups.

Description: Creates a new group with the fixed creation contact link.

Request (Body):
  - name, location, date: string (required)
  - min_age, max_age, spots_free: int (required)
  - styles: []string (optional)
  - image: string (optional)

Response:
  - 200: Group: Created object
  - 400: VALIDATION_ERROR: Invalid body
*/
func (handler *Handler) createGroup(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Present(FieldName, input.Name != nil).
		Present(FieldLocation, input.Location != nil).
		Present(FieldDate, input.Date != nil).
		Present(FieldMinAge, input.MinAge != nil).
		Present(FieldMaxAge, input.MaxAge != nil).
		Present(FieldSpotsFree, input.SpotsFree != nil)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft := Draft{
		Name:      *input.Name,
		Location:  *input.Location,
		Date:      *input.Date,
		MinAge:    *input.MinAge,
		MaxAge:    *input.MaxAge,
		Styles:    input.Styles,
		SpotsFree: *input.SpotsFree,
		Image:     pointer.Val(input.Image),
	}

	group, err := handler.service.Create(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, group)
}
