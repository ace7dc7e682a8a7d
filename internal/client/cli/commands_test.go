package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/dmitrijs2005/safekey/internal/client/client"
	"github.com/dmitrijs2005/safekey/internal/client/config"
	pb "github.com/dmitrijs2005/safekey/internal/proto"
)

type fakeAPI struct {
	users       map[string]*pb.User
	categories  []*pb.Category
	credentials map[string]*pb.Credential
	settings    *pb.SecuritySettings
	activity    []*pb.AppendActivityRequest

	createdUser     *pb.CreateUserRequest
	createdCred     *pb.CreateCredentialRequest
	createdSettings *pb.CreateSettingsRequest
	deleted         []string
	verifiedCode    string

	pingErr     error
	verifyErr   error
	activityErr error
	closed      bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users:       map[string]*pb.User{},
		credentials: map[string]*pb.Credential{},
	}
}

func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeAPI) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	f.createdUser = req
	u := &pb.User{Id: "u-new", FirstName: req.FirstName, LastName: req.LastName, PinCode: req.PinCode, FingerprintTemplate: req.FingerprintTemplate}
	f.users[u.Id] = u
	return u, nil
}

func (f *fakeAPI) GetUser(ctx context.Context, id string) (*pb.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", client.ErrNotFound, id)
	}
	return u, nil
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]*pb.User, error) {
	var out []*pb.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, "user:"+id)
	return nil
}

func (f *fakeAPI) CreateCategory(ctx context.Context, userID, name string) (*pb.Category, error) {
	c := &pb.Category{Id: "k-new", UserId: userID, Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context, userID string) ([]*pb.Category, error) {
	return f.categories, nil
}

func (f *fakeAPI) DeleteCategory(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, "category:"+id)
	return nil
}

func (f *fakeAPI) CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.Credential, error) {
	f.createdCred = req
	c := &pb.Credential{Id: "c-new", UserId: req.UserId, CategoryId: req.CategoryId, PlatformName: req.PlatformName,
		AccountIdentifier: req.AccountIdentifier, SecretValue: req.SecretValue, Url: req.Url}
	f.credentials[c.Id] = c
	return c, nil
}

func (f *fakeAPI) GetCredential(ctx context.Context, id string) (*pb.Credential, error) {
	c, ok := f.credentials[id]
	if !ok {
		return nil, fmt.Errorf("%w: credential %s", client.ErrNotFound, id)
	}
	return c, nil
}

func (f *fakeAPI) ListCredentials(ctx context.Context, userID string) ([]*pb.Credential, error) {
	var out []*pb.Credential
	for _, c := range f.credentials {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeAPI) DeleteCredential(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, "credential:"+id)
	return nil
}

func (f *fakeAPI) GetSettings(ctx context.Context, userID string) (*pb.SecuritySettings, error) {
	if f.settings == nil {
		return nil, fmt.Errorf("%w: settings", client.ErrNotFound)
	}
	return f.settings, nil
}

func (f *fakeAPI) CreateSettings(ctx context.Context, req *pb.CreateSettingsRequest) (*pb.SecuritySettings, error) {
	f.createdSettings = req
	f.settings = &pb.SecuritySettings{
		Id:                  "s-new",
		UserId:              req.UserId,
		BiometricEnabled:    req.BiometricEnabled,
		OtpEnabled:          req.OtpEnabled,
		PreferredOtpChannel: req.PreferredOtpChannel,
		BackupEmail:         req.BackupEmail,
		BackupPhone:         req.BackupPhone,
	}
	return f.settings, nil
}

func (f *fakeAPI) GenerateOtp(ctx context.Context, userID string) (string, error) {
	return "048213", nil
}

func (f *fakeAPI) VerifyOtp(ctx context.Context, userID, code string) (*pb.OtpChallenge, error) {
	f.verifiedCode = code
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &pb.OtpChallenge{Id: "o-1", UserId: userID, Code: code, Verified: true}, nil
}

func (f *fakeAPI) AppendActivity(ctx context.Context, req *pb.AppendActivityRequest) (*pb.ActivityLogEntry, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	f.activity = append(f.activity, req)
	return &pb.ActivityLogEntry{Id: "a-1", UserId: req.UserId, Action: req.Action, Target: req.Target}, nil
}

func (f *fakeAPI) ListUserActivity(ctx context.Context, userID string) ([]*pb.ActivityLogEntry, error) {
	var out []*pb.ActivityLogEntry
	for i, r := range f.activity {
		out = append(out, &pb.ActivityLogEntry{Id: fmt.Sprint(i), UserId: r.UserId, Action: r.Action, Target: r.Target})
	}
	return out, nil
}

func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

func requireProto(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func newTestApp(input string) (*App, *fakeAPI, *bytes.Buffer) {
	f := newFakeAPI()
	var out bytes.Buffer
	a := &App{
		config: &config.Config{ServerEndpointAddr: "bufnet", RequestTimeout: time.Second},
		api:    f,
		in:     rdr(input),
		out:    &out,
	}
	return a, f, &out
}

func withUser(a *App, f *fakeAPI) {
	u := &pb.User{Id: "u-1", FirstName: "Ada", LastName: "Lovelace"}
	f.users[u.Id] = u
	a.user = u
}

func TestAddUser_SelectsNewUser(t *testing.T) {
	stubPassword(t, " 1234 ", nil)

	tmpl := filepath.Join(t.TempDir(), "finger.bin")
	require.NoError(t, os.WriteFile(tmpl, []byte{0x00, 0xFF, 0x10}, 0o600))

	a, f, out := newTestApp("Ada\nLovelace\n" + tmpl + "\n")
	require.NoError(t, a.AddUser(context.Background()))

	requireProto(t, &pb.CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", PinCode: 1234, FingerprintTemplate: []byte{0x00, 0xFF, 0x10}}, f.createdUser)
	require.True(t, a.hasUser())
	require.Equal(t, "(Ada Lovelace)", a.getStatus())
	require.Contains(t, out.String(), "User u-new created and selected")
}

func TestAddUser_Errors(t *testing.T) {
	t.Run("pin not a number", func(t *testing.T) {
		stubPassword(t, "12ab", nil)
		a, f, _ := newTestApp("Ada\nLovelace\n\n")
		require.Error(t, a.AddUser(context.Background()))
		require.Nil(t, f.createdUser)
	})

	t.Run("template file missing", func(t *testing.T) {
		stubPassword(t, "1234", nil)
		a, f, _ := newTestApp("Ada\nLovelace\n" + filepath.Join(t.TempDir(), "nope") + "\n")
		require.Error(t, a.AddUser(context.Background()))
		require.Nil(t, f.createdUser)
	})

	t.Run("no template", func(t *testing.T) {
		stubPassword(t, "1234", nil)
		a, f, _ := newTestApp("Ada\nLovelace\n\n")
		require.NoError(t, a.AddUser(context.Background()))
		require.Nil(t, f.createdUser.FingerprintTemplate)
	})
}

func TestUseAndDeleteUser(t *testing.T) {
	a, f, out := newTestApp("")
	f.users["u-1"] = &pb.User{Id: "u-1", FirstName: "Ada", LastName: "Lovelace", FingerprintTemplate: []byte{1, 2}}

	err := a.Use(context.Background(), "missing")
	require.ErrorIs(t, err, client.ErrNotFound)
	require.False(t, a.hasUser())

	require.NoError(t, a.Use(context.Background(), "u-1"))
	require.Contains(t, out.String(), "fingerprint 2 bytes")

	require.NoError(t, a.DeleteUser(context.Background()))
	require.Equal(t, []string{"user:u-1"}, f.deleted)
	require.False(t, a.hasUser())
	require.ErrorIs(t, a.DeleteUser(context.Background()), errNoUser)
}

func TestCommandsRequireUser(t *testing.T) {
	a, _, _ := newTestApp("")
	ctx := context.Background()

	for name, fn := range map[string]func() error{
		"cats":     func() error { return a.Categories(ctx) },
		"addcat":   func() error { return a.AddCategory(ctx) },
		"delcat":   func() error { return a.DeleteCategory(ctx, "x") },
		"creds":    func() error { return a.Credentials(ctx) },
		"addcred":  func() error { return a.AddCredential(ctx) },
		"show":     func() error { return a.Show(ctx, "x") },
		"delcred":  func() error { return a.DeleteCredential(ctx, "x") },
		"settings": func() error { return a.Settings(ctx) },
		"otp":      func() error { return a.Otp(ctx) },
		"verify":   func() error { return a.Verify(ctx) },
		"log":      func() error { return a.Log(ctx) },
	} {
		require.ErrorIs(t, fn(), errNoUser, name)
	}
}

func TestCategories(t *testing.T) {
	a, f, out := newTestApp("Banking\n")
	withUser(a, f)
	ctx := context.Background()

	require.NoError(t, a.Categories(ctx))
	require.Contains(t, out.String(), "No categories")

	require.NoError(t, a.AddCategory(ctx))
	requireProto(t, []*pb.Category{{Id: "k-new", UserId: "u-1", Name: "Banking"}}, f.categories)

	out.Reset()
	require.NoError(t, a.Categories(ctx))
	require.Contains(t, out.String(), "k-new  Banking")

	require.NoError(t, a.DeleteCategory(ctx, "k-new"))
	require.Equal(t, []string{"category:k-new"}, f.deleted)
	requireProto(t, []*pb.AppendActivityRequest{{UserId: "u-1", Action: "delete", Target: "category:k-new"}}, f.activity)
}

func TestCredentials_AddListShowDelete(t *testing.T) {
	stubPassword(t, "hunter2", nil)

	a, f, out := newTestApp("k-1\nGitHub\nada@example.org\nhttps://github.com\n")
	withUser(a, f)
	ctx := context.Background()

	require.NoError(t, a.AddCredential(ctx))
	require.Equal(t, "hunter2", f.createdCred.SecretValue)
	require.Equal(t, "u-1", f.createdCred.UserId)
	require.Equal(t, "k-1", f.createdCred.CategoryId)
	require.NotNil(t, f.createdCred.Url)
	require.Equal(t, "https://github.com", *f.createdCred.Url)

	out.Reset()
	require.NoError(t, a.Credentials(ctx))
	require.Contains(t, out.String(), "c-new  GitHub  ada@example.org  ******")
	require.NotContains(t, out.String(), "hunter2")

	out.Reset()
	require.NoError(t, a.Show(ctx, "c-new"))
	require.Contains(t, out.String(), "Secret:   hunter2")
	require.Contains(t, out.String(), "URL:      https://github.com")

	require.ErrorIs(t, a.Show(ctx, "missing"), client.ErrNotFound)

	require.NoError(t, a.DeleteCredential(ctx, "c-new"))

	var actions []string
	for _, r := range f.activity {
		actions = append(actions, r.Action+" "+r.Target)
	}
	require.Equal(t, []string{"create credential:c-new", "reveal credential:c-new", "delete credential:c-new"}, actions)
}

func TestRecordFailureIsWarning(t *testing.T) {
	a, f, out := newTestApp("")
	withUser(a, f)
	f.credentials["c-1"] = &pb.Credential{Id: "c-1", PlatformName: "Mail", SecretValue: "pw"}
	f.activityErr = errors.New("down")

	require.NoError(t, a.Show(context.Background(), "c-1"))
	require.Contains(t, out.String(), "warning: activity not recorded: down")
	require.Contains(t, out.String(), "Secret:   pw")
}

func TestSettings_CreateWhenAbsent(t *testing.T) {
	a, f, out := newTestApp("y\nn\ny\nEmail\nada@example.org\n\n")
	withUser(a, f)

	require.NoError(t, a.Settings(context.Background()))

	email := "ada@example.org"
	requireProto(t, &pb.CreateSettingsRequest{UserId: "u-1", OtpEnabled: true, PreferredOtpChannel: "Email", BackupEmail: &email}, f.createdSettings)
	require.Contains(t, out.String(), "Channel:   Email")
	require.Contains(t, out.String(), "Email:     ada@example.org")
}

func TestSettings_DeclineCreate(t *testing.T) {
	a, f, _ := newTestApp("n\n")
	withUser(a, f)

	require.NoError(t, a.Settings(context.Background()))
	require.Nil(t, f.createdSettings)
}

func TestSettings_ShowExisting(t *testing.T) {
	a, f, out := newTestApp("")
	withUser(a, f)
	f.settings = &pb.SecuritySettings{Id: "s-1", UserId: "u-1", BiometricEnabled: true}

	require.NoError(t, a.Settings(context.Background()))
	require.Contains(t, out.String(), "Biometric: true")
	require.Nil(t, f.createdSettings)
}

func TestOtpAndVerify(t *testing.T) {
	a, f, out := newTestApp(" 048213 \n")
	withUser(a, f)
	ctx := context.Background()

	require.NoError(t, a.Otp(ctx))
	require.Contains(t, out.String(), "One-time code: 048213")

	require.NoError(t, a.Verify(ctx))
	require.Equal(t, "048213", f.verifiedCode)
	require.Contains(t, out.String(), "Code accepted")
	requireProto(t, []*pb.AppendActivityRequest{{UserId: "u-1", Action: "verify", Target: "otp"}}, f.activity)
}

func TestVerify_Rejected(t *testing.T) {
	a, f, _ := newTestApp("000000\n")
	withUser(a, f)
	f.verifyErr = fmt.Errorf("%w: code does not match", client.ErrInvalidCode)

	err := a.Verify(context.Background())
	require.ErrorIs(t, err, client.ErrInvalidCode)
	require.Empty(t, f.activity)
}

func TestLog(t *testing.T) {
	a, f, out := newTestApp("")
	withUser(a, f)
	f.activity = []*pb.AppendActivityRequest{{UserId: "u-1", Action: "reveal", Target: "credential:c-1"}}

	require.NoError(t, a.Log(context.Background()))
	require.Contains(t, out.String(), "reveal   credential:c-1")
}

func TestPing(t *testing.T) {
	a, f, out := newTestApp("")

	require.NoError(t, a.Ping(context.Background()))
	require.Contains(t, out.String(), "Server bufnet is up")

	f.pingErr = client.ErrUnavailable
	require.ErrorIs(t, a.Ping(context.Background()), client.ErrUnavailable)
}

func TestRun_ExitsOnQuit(t *testing.T) {
	capturePrint(t)

	a, f, out := newTestApp("quit\n")
	f.pingErr = client.ErrUnavailable

	a.Run(context.Background())

	require.True(t, f.closed)
	require.Contains(t, out.String(), "Welcome to safekey")
	require.Contains(t, out.String(), "is not reachable yet")
}
