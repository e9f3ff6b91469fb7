package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/constants"
	"github.com/communiverse/community-api/internal/database"
	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/repository"
	"github.com/communiverse/community-api/internal/services"
	"github.com/communiverse/community-api/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const tokenTestTTL = time.Hour

var testModifyRoles = []string{"Community Admin", "Community Moderator"}

type testEnv struct {
	db               *gorm.DB
	tokens           *token.Manager
	authService      *services.AuthService
	roleService      *services.RoleService
	communityService *services.CommunityService
	memberService    *services.MemberService
	authHandler      *AuthHandler
	roleHandler      *RoleHandler
	communityHandler *CommunityHandler
	memberHandler    *MemberHandler
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Community{},
		&models.Member{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	tokens := token.NewManager("test-secret", tokenTestTTL)
	authService := services.NewAuthService(userRepo)
	roleService := services.NewRoleService(roleRepo)
	communityService := services.NewCommunityService(communityRepo, memberRepo, userRepo)
	authorizer := services.NewAuthorizer(memberRepo, testModifyRoles)
	memberService := services.NewMemberService(memberRepo, userRepo, communityRepo, roleRepo, authorizer)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:               db,
		tokens:           tokens,
		authService:      authService,
		roleService:      roleService,
		communityService: communityService,
		memberService:    memberService,
		authHandler:      NewAuthHandler(authService, tokens),
		roleHandler:      NewRoleHandler(roleService),
		communityHandler: NewCommunityHandler(communityService, memberService),
		memberHandler:    NewMemberHandler(memberService),
	}
}

// testContext builds a gin context with an optional JSON body and the
// authenticated principal injected the way RequireAuth would.
func testContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != "" {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRole(t *testing.T, env testEnv, name string) *models.Role {
	t.Helper()

	role, err := env.roleService.CreateRole(name)
	require.NoError(t, err)
	return role
}

func createTestCommunity(t *testing.T, env testEnv, name, ownerID string) *models.Community {
	t.Helper()

	community, err := env.communityService.CreateCommunity(name, ownerID)
	require.NoError(t, err)
	return community
}

func addTestMember(t *testing.T, env testEnv, communityID, userID, roleID string) *models.Member {
	t.Helper()

	member, err := env.memberService.AddMember(services.AddMemberInput{
		CommunityID: communityID,
		UserID:      userID,
		RoleID:      roleID,
	})
	require.NoError(t, err)
	return member
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
