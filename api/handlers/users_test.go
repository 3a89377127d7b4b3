package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/als-computing/splash-userservice/api/services"
	"github.com/als-computing/splash-userservice/models"
)

const testORCID = "0000-0002-1817-0042"

func TestGetUser_Success(t *testing.T) {
	svc := &services.MockUserService{}
	svc.On("GetUser", mock.Anything, testORCID, services.IDTypeORCID, true).
		Return(&models.User{
			UID:    "123456",
			ORCID:  testORCID,
			Groups: []string{"7.3.3", "ALS-08111"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/user/"+testORCID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": testORCID})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "123456", user.UID)
	assert.Equal(t, []string{"7.3.3", "ALS-08111"}, user.Groups)
	svc.AssertExpectations(t)
}

func TestGetUser_EmailAndNoGroups(t *testing.T) {
	svc := &services.MockUserService{}
	svc.On("GetUser", mock.Anything, "zaphod@example.com", services.IDTypeEmail, false).
		Return(&models.User{UID: "123456", ORCID: testORCID}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/user/zaphod@example.com?id_type=email&fetch_groups=false", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "zaphod@example.com"})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestGetUser_InvalidIDType(t *testing.T) {
	svc := &services.MockUserService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/user/someone?id_type=lbnlid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "someone"})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "GetUser")
}

func TestGetUser_InvalidFetchGroups(t *testing.T) {
	svc := &services.MockUserService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/user/someone?fetch_groups=maybe", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "someone"})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "GetUser")
}

func TestGetUser_NotFound(t *testing.T) {
	svc := &services.MockUserService{}
	svc.On("GetUser", mock.Anything, "unknown", services.IDTypeORCID, true).
		Return(nil, &services.UserNotFoundError{ID: "unknown"})

	req := httptest.NewRequest(http.MethodGet, "/v1/user/unknown", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "unknown"})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "not found")
}

func TestGetUser_CommunicationError(t *testing.T) {
	svc := &services.MockUserService{}
	svc.On("GetUser", mock.Anything, testORCID, services.IDTypeORCID, true).
		Return(nil, &services.CommunicationError{Message: "exception talking to ALSGetPerson/"})

	req := httptest.NewRequest(http.MethodGet, "/v1/user/"+testORCID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": testORCID})
	rr := httptest.NewRecorder()

	GetUser(svc)(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetUserGroupDetails_Success(t *testing.T) {
	uid := 123456
	svc := &services.MockUserService{}
	svc.On("GetUserGroupDetails", mock.Anything, testORCID).
		Return(&models.V2UserGroupDetails{
			UID:       &uid,
			ORCID:     testORCID,
			Groups:    []string{"7.3.3", "ALS-11344"},
			Beamlines: []string{"7.3.3"},
			Proposals: []string{},
			Esafs: []models.V2UserEsaf{
				{ID: "E-100", Roles: []string{"pi"}, ProposalID: "ALS-11344"},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v2/user/"+testORCID+"/groupdetails", nil)
	req = mux.SetURLVars(req, map[string]string{"orcid": testORCID})
	rr := httptest.NewRecorder()

	GetUserGroupDetails(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var details models.V2UserGroupDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &details))
	require.NotNil(t, details.UID)
	assert.Equal(t, 123456, *details.UID)
	assert.Equal(t, []string{"7.3.3", "ALS-11344"}, details.Groups)
	require.Len(t, details.Esafs, 1)
	assert.Equal(t, "E-100", details.Esafs[0].ID)
	svc.AssertExpectations(t)
}

func TestGetUserGroupDetails_NotFound(t *testing.T) {
	svc := &services.MockUserService{}
	svc.On("GetUserGroupDetails", mock.Anything, "unknown").
		Return(nil, &services.UserNotFoundError{ID: "unknown"})

	req := httptest.NewRequest(http.MethodGet, "/v2/user/unknown/groupdetails", nil)
	req = mux.SetURLVars(req, map[string]string{"orcid": "unknown"})
	rr := httptest.NewRecorder()

	GetUserGroupDetails(svc)(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	Health()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rr.Body.String())
}
