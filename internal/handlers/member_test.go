package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/dto"
	"github.com/communiverse/community-api/internal/models"
)

func TestMemberHandler_AddMember(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	user := createTestUser(t, env.db, "John Doe", "john@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	role := createTestRole(t, env, "Community Member")

	body, err := json.Marshal(map[string]string{
		"community": community.ID,
		"user":      user.ID,
		"role":      role.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/member", body, owner.ID)

	env.memberHandler.AddMember(c)

	requireStatus(t, w, http.StatusCreated)

	var response struct {
		Data dto.MemberDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data.ID)
	require.Equal(t, community.ID, response.Data.Community)
	require.Equal(t, user.ID, response.Data.User)
	require.Equal(t, role.ID, response.Data.Role)
}

func TestMemberHandler_AddMember_DuplicateTriple(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	user := createTestUser(t, env.db, "John Doe", "john@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	role := createTestRole(t, env, "Community Member")
	addTestMember(t, env, community.ID, user.ID, role.ID)

	body, err := json.Marshal(map[string]string{
		"community": community.ID,
		"user":      user.ID,
		"role":      role.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/member", body, owner.ID)

	env.memberHandler.AddMember(c)

	requireStatus(t, w, http.StatusConflict)
}

func TestMemberHandler_AddMember_SecondRoleSucceeds(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	user := createTestUser(t, env.db, "John Doe", "john@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	memberRole := createTestRole(t, env, "Community Member")
	modRole := createTestRole(t, env, "Community Moderator")
	first := addTestMember(t, env, community.ID, user.ID, memberRole.ID)

	body, err := json.Marshal(map[string]string{
		"community": community.ID,
		"user":      user.ID,
		"role":      modRole.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/member", body, owner.ID)

	env.memberHandler.AddMember(c)

	requireStatus(t, w, http.StatusCreated)

	var response struct {
		Data dto.MemberDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEqual(t, first.ID, response.Data.ID)

	var count int64
	require.NoError(t, env.db.Model(&models.Member{}).
		Where("user_id = ? AND community_id = ?", user.ID, community.ID).
		Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestMemberHandler_AddMember_MissingReferences(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	user := createTestUser(t, env.db, "John Doe", "john@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	role := createTestRole(t, env, "Community Member")

	cases := []struct {
		name    string
		payload map[string]string
		wantMsg string
	}{
		{
			name:    "unknown user",
			payload: map[string]string{"community": community.ID, "user": "missing", "role": role.ID},
			wantMsg: "user not found",
		},
		{
			name:    "unknown community",
			payload: map[string]string{"community": "missing", "user": user.ID, "role": role.ID},
			wantMsg: "community not found",
		},
		{
			name:    "unknown role",
			payload: map[string]string{"community": community.ID, "user": user.ID, "role": "missing"},
			wantMsg: "role not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			c, w := testContext(http.MethodPost, "/v1/member", body, owner.ID)

			env.memberHandler.AddMember(c)

			requireStatus(t, w, http.StatusNotFound)
			require.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestMemberHandler_RemoveMember_AsAdmin(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	admin := createTestUser(t, env.db, "Admin", "admin@example.com")
	target := createTestUser(t, env.db, "Target", "target@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	adminRole := createTestRole(t, env, "Community Admin")
	memberRole := createTestRole(t, env, "Community Member")

	addTestMember(t, env, community.ID, admin.ID, adminRole.ID)
	targetMember := addTestMember(t, env, community.ID, target.ID, memberRole.ID)

	c, w := testContext(http.MethodDelete, "/v1/member/"+targetMember.ID, nil, admin.ID)
	c.Params = []gin.Param{{Key: "id", Value: targetMember.ID}}

	env.memberHandler.RemoveMember(c)

	requireStatus(t, w, http.StatusOK)

	// The deletion is terminal
	var gone models.Member
	err := env.db.Where("id = ?", targetMember.ID).First(&gone).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestMemberHandler_RemoveMember_InsufficientRole(t *testing.T) {
	env := setupTestEnv(t)

	owner := createTestUser(t, env.db, "Jane Doe", "jane@example.com")
	actor := createTestUser(t, env.db, "Actor", "actor@example.com")
	target := createTestUser(t, env.db, "Target", "target@example.com")
	community := createTestCommunity(t, env, "Mumbai Engineers", owner.ID)
	memberRole := createTestRole(t, env, "Community Member")

	addTestMember(t, env, community.ID, actor.ID, memberRole.ID)
	targetMember := addTestMember(t, env, community.ID, target.ID, memberRole.ID)

	c, w := testContext(http.MethodDelete, "/v1/member/"+targetMember.ID, nil, actor.ID)
	c.Params = []gin.Param{{Key: "id", Value: targetMember.ID}}

	env.memberHandler.RemoveMember(c)

	requireStatus(t, w, http.StatusForbidden)
}

func TestMemberHandler_RemoveMember_TargetMissing(t *testing.T) {
	env := setupTestEnv(t)

	actor := createTestUser(t, env.db, "Actor", "actor@example.com")

	c, w := testContext(http.MethodDelete, "/v1/member/missing", nil, actor.ID)
	c.Params = []gin.Param{{Key: "id", Value: "missing"}}

	env.memberHandler.RemoveMember(c)

	requireStatus(t, w, http.StatusNotFound)
}
