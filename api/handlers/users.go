package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/als-computing/splash-userservice/api/services"
	"github.com/als-computing/splash-userservice/models"
)

// @Summary Get a user
// @Description Look up a user in the facility identity service by ORCID or email and return the normalized user model.
// @Tags users
// @Produce json
// @Param id path string true "User identifier (ORCID or email)" example(0000-0002-1817-0042)
// @Param id_type query string false "Identifier type: orcid or email" default(orcid)
// @Param fetch_groups query boolean false "Populate the group list from beamline roles, proposals and ESAFs" default(true)
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /v1/user/{id} [get]
func GetUser(svc services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		idType := services.IDTypeORCID
		if param := r.URL.Query().Get("id_type"); param != "" {
			var err error
			if idType, err = services.ParseIDType(param); err != nil {
				WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
				return
			}
		}

		fetchGroups := true
		if param := r.URL.Query().Get("fetch_groups"); param != "" {
			var err error
			if fetchGroups, err = strconv.ParseBool(param); err != nil {
				WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "fetch_groups must be a boolean"})
				return
			}
		}

		user, err := svc.GetUser(r.Context(), id, idType, fetchGroups)
		if err != nil {
			WriteErrResponse(w, r, err)
			return
		}

		WriteResponse(w, http.StatusOK, user)
	}
}

// @Summary Get a user's group details
// @Description Look up a user by ORCID and return the consolidated group list along with the beamlines, proposals and ESAFs it was built from.
// @Tags users
// @Produce json
// @Param orcid path string true "User's ORCID" example(0000-0002-1817-0042)
// @Success 200 {object} models.V2UserGroupDetails
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /v2/user/{orcid}/groupdetails [get]
func GetUserGroupDetails(svc services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orcid := mux.Vars(r)["orcid"]

		details, err := svc.GetUserGroupDetails(r.Context(), orcid)
		if err != nil {
			WriteErrResponse(w, r, err)
			return
		}

		WriteResponse(w, http.StatusOK, details)
	}
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /healthz [get]
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}
