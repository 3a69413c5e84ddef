package handlers

import (
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sajid-dev/doctors-portal-api/internal/auth"
	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

func TestIssueTokenForKnownUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []models.User{
		{ID: primitive.NewObjectID(), Email: "a@b.com"},
	}

	w := env.do(t, http.MethodGet, "/jwt?email=a@b.com", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var res struct {
		AccessToken string `json:"accessToken"`
	}
	decodeJSON(t, w, &res)
	if res.AccessToken == "" {
		t.Fatal("accessToken is empty")
	}

	claims, err := env.tokens.Verify(res.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("claim email = %q, want a@b.com", claims.Email)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < auth.TokenTTL-time.Minute || ttl > auth.TokenTTL {
		t.Errorf("token ttl = %v, want about %v", ttl, auth.TokenTTL)
	}
}

func TestIssueTokenForUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/jwt?email=unknown@x", "", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var res struct {
		AccessToken string `json:"accessToken"`
	}
	decodeJSON(t, w, &res)
	if res.AccessToken != "" {
		t.Errorf("accessToken = %q, want empty", res.AccessToken)
	}
}

func TestGetIsAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []models.User{
		{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: models.RoleAdmin},
		{ID: primitive.NewObjectID(), Email: "user@b.com"},
	}

	check := func(email string, want bool) {
		w := env.do(t, http.MethodGet, "/users/admin/"+email, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var res struct {
			IsAdmin bool `json:"isAdmin"`
		}
		decodeJSON(t, w, &res)
		if res.IsAdmin != want {
			t.Errorf("isAdmin(%s) = %v, want %v", email, res.IsAdmin, want)
		}
	}

	check("admin@b.com", true)
	check("user@b.com", false)
	check("nobody@b.com", false)
}

func TestCreateAndListUsers(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/users", `{"name":"Alice","email":"a@b.com"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200", w.Code)
	}
	var ack struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	decodeJSON(t, w, &ack)
	if !ack.Acknowledged || ack.InsertedID == "" {
		t.Fatalf("create = %+v, want acknowledged with id", ack)
	}

	// Duplicate emails are not rejected here.
	w = env.do(t, http.MethodPost, "/users", `{"name":"Alice again","email":"a@b.com"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate email status = %d, want 200", w.Code)
	}

	w = env.do(t, http.MethodGet, "/users", "", "")
	var users []models.User
	decodeJSON(t, w, &users)
	if len(users) != 2 {
		t.Errorf("listed %d users, want 2", len(users))
	}
}

func TestPromoteUserRequiresAdminCaller(t *testing.T) {
	env := newTestEnv(t)
	admin := models.User{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: models.RoleAdmin}
	regular := models.User{ID: primitive.NewObjectID(), Email: "user@b.com"}
	env.users.users = []models.User{admin, regular}

	target := regular.ID.Hex()

	if w := env.do(t, http.MethodPut, "/users/admin/"+target, "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}

	userToken := env.tokenFor(t, "user@b.com")
	if w := env.do(t, http.MethodPut, "/users/admin/"+target, "", userToken); w.Code != http.StatusForbidden {
		t.Errorf("non-admin caller status = %d, want 403", w.Code)
	}

	adminToken := env.tokenFor(t, "admin@b.com")
	w := env.do(t, http.MethodPut, "/users/admin/"+target, "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("admin caller status = %d, want 200", w.Code)
	}
	var res struct {
		MatchedCount  int64 `json:"matchedCount"`
		ModifiedCount int64 `json:"modifiedCount"`
	}
	decodeJSON(t, w, &res)
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("update result = %+v, want matched=1 modified=1", res)
	}

	var promoted models.User
	for _, u := range env.users.users {
		if u.Email == "user@b.com" {
			promoted = u
		}
	}
	if !promoted.Role.IsAdmin() {
		t.Error("target user was not promoted")
	}
}

func TestPromoteUnknownIDUpserts(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []models.User{
		{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: models.RoleAdmin},
	}

	missing := primitive.NewObjectID()
	adminToken := env.tokenFor(t, "admin@b.com")
	w := env.do(t, http.MethodPut, "/users/admin/"+missing.Hex(), "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var res struct {
		UpsertedID string `json:"upsertedId"`
	}
	decodeJSON(t, w, &res)
	if res.UpsertedID != missing.Hex() {
		t.Errorf("upsertedId = %q, want %s", res.UpsertedID, missing.Hex())
	}
	if len(env.users.users) != 2 {
		t.Errorf("store holds %d users, want 2 (upsert created one)", len(env.users.users))
	}
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID()
	env.users.users = []models.User{{ID: id, Email: "a@b.com"}}

	// No auth gate on this route.
	w := env.do(t, http.MethodDelete, "/users/"+id.Hex(), "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var res struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	decodeJSON(t, w, &res)
	if res.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", res.DeletedCount)
	}
}
