package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/logging"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"github.com/mbaklanov/chatline/internal/server/chat"
	"github.com/mbaklanov/chatline/internal/server/models"
	"github.com/mbaklanov/chatline/internal/server/users"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUsers struct {
	registerErr error

	loginResp *users.TokenPair
	loginErr  error

	refreshResp *users.TokenPair
	refreshErr  error

	revokeErr error

	authorizeUser string
	authorizeErr  error

	revokedFor string
}

func (f *fakeUsers) Register(ctx context.Context, username, password string) error {
	return f.registerErr
}
func (f *fakeUsers) Login(ctx context.Context, username, password string) (*users.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) Refresh(ctx context.Context, refreshToken string) (*users.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUsers) RevokeAll(ctx context.Context, username string) error {
	f.revokedFor = username
	return f.revokeErr
}
func (f *fakeUsers) Authorize(tokenString string) (string, error) {
	return f.authorizeUser, f.authorizeErr
}

type fakeChat struct {
	listResp []string
	listErr  error

	sendOutcome chat.Outcome
	sendErr     error
	sentSrc     string
	sentDst     string
	sentText    string

	deleteErr  error
	deletedFor string

	streamErr      error
	streamMessages []*models.Message
}

func (f *fakeChat) ListUsernames(ctx context.Context) ([]string, error) {
	return f.listResp, f.listErr
}
func (f *fakeChat) Send(ctx context.Context, source, destination, text string) (chat.Outcome, error) {
	f.sentSrc, f.sentDst, f.sentText = source, destination, text
	return f.sendOutcome, f.sendErr
}
func (f *fakeChat) DeleteAccount(ctx context.Context, username string) error {
	f.deletedFor = username
	return f.deleteErr
}
func (f *fakeChat) OpenStream(ctx context.Context, username string, sink chat.Sink) error {
	for _, m := range f.streamMessages {
		if err := sink.Send(m); err != nil {
			return err
		}
	}
	return f.streamErr
}

// fakeMsgStream satisfies grpc.ServerStreamingServer[pb.ChatMessage] for
// handler tests. Only Context and Send are exercised.
type fakeMsgStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.ChatMessage
}

func (f *fakeMsgStream) Context() context.Context { return f.ctx }
func (f *fakeMsgStream) Send(m *pb.ChatMessage) error {
	f.sent = append(f.sent, m)
	return nil
}

// ---- helpers ----

func newServer(u userService, c chatService) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		users:   u,
		chat:    c,
		logger:  logging.Nop{},
	}
}

func authedCtx(username string) context.Context {
	return context.WithValue(context.Background(), usernameKey, username)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("expected code %v, got %v (%v)", code, st.Code(), err)
	}
}

// ---- tests ----

func TestCreateAccount_OK(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{})

	resp, err := s.CreateAccount(context.Background(), &pb.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if !resp.Status {
		t.Error("expected status true")
	}
}

func TestCreateAccount_Taken(t *testing.T) {
	s := newServer(&fakeUsers{registerErr: common.ErrUsernameTaken}, &fakeChat{})

	_, err := s.CreateAccount(context.Background(), &pb.Credentials{Username: "alice", Password: "pw"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestCreateAccount_Invalid(t *testing.T) {
	s := newServer(&fakeUsers{registerErr: common.ErrValidation}, &fakeChat{})

	_, err := s.CreateAccount(context.Background(), &pb.Credentials{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestLogin_OK(t *testing.T) {
	s := newServer(&fakeUsers{loginResp: &users.TokenPair{AccessToken: "at", RefreshToken: "rt"}}, &fakeChat{})

	resp, err := s.Login(context.Background(), &pb.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != "at" || resp.RefreshToken != "rt" {
		t.Errorf("unexpected tokens: %+v", resp)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newServer(&fakeUsers{loginErr: common.ErrWrongCredential}, &fakeChat{})

	_, err := s.Login(context.Background(), &pb.Credentials{Username: "alice", Password: "nope"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogin_UnknownUser(t *testing.T) {
	s := newServer(&fakeUsers{loginErr: common.ErrUnknownUser}, &fakeChat{})

	_, err := s.Login(context.Background(), &pb.Credentials{Username: "ghost", Password: "pw"})
	wantCode(t, err, codes.NotFound)
}

func TestRefreshToken_Expired(t *testing.T) {
	s := newServer(&fakeUsers{refreshErr: common.ErrRefreshTokenExpired}, &fakeChat{})

	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "old"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestListUsers_OK(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{listResp: []string{"alice", "bob"}})

	resp, err := s.ListUsers(authedCtx("alice"), &pb.ListUsersRequest{})
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(resp.Usernames) != 2 {
		t.Errorf("expected 2 usernames, got %v", resp.Usernames)
	}
}

func TestSendMessage_Queued(t *testing.T) {
	fc := &fakeChat{sendOutcome: chat.QueuedOffline}
	s := newServer(&fakeUsers{}, fc)

	resp, err := s.SendMessage(authedCtx("alice"), &pb.SendMessageRequest{DstUsername: "bob", Text: "hi"})
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if !resp.Queued {
		t.Error("expected queued true")
	}
	if fc.sentSrc != "alice" || fc.sentDst != "bob" || fc.sentText != "hi" {
		t.Errorf("unexpected routed args: %q %q %q", fc.sentSrc, fc.sentDst, fc.sentText)
	}
}

func TestSendMessage_DeliveredLive(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{sendOutcome: chat.DeliveredLive})

	resp, err := s.SendMessage(authedCtx("alice"), &pb.SendMessageRequest{DstUsername: "bob", Text: "hi"})
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if resp.Queued {
		t.Error("expected queued false")
	}
}

func TestSendMessage_UnknownDestination(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{sendErr: common.ErrUnknownDestination})

	_, err := s.SendMessage(authedCtx("alice"), &pb.SendMessageRequest{DstUsername: "ghost", Text: "hi"})
	wantCode(t, err, codes.NotFound)
}

func TestSendMessage_NoIdentity(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{})

	_, err := s.SendMessage(context.Background(), &pb.SendMessageRequest{DstUsername: "bob", Text: "hi"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestDeleteAccount_OK(t *testing.T) {
	fu := &fakeUsers{}
	fc := &fakeChat{}
	s := newServer(fu, fc)

	resp, err := s.DeleteAccount(authedCtx("alice"), &pb.DeleteAccountRequest{})
	if err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}
	if !resp.Status {
		t.Error("expected status true")
	}
	if fc.deletedFor != "alice" || fu.revokedFor != "alice" {
		t.Errorf("expected deletion and revocation for alice, got %q / %q", fc.deletedFor, fu.revokedFor)
	}
}

func TestMessageStream_ForwardsMessages(t *testing.T) {
	fc := &fakeChat{streamMessages: []*models.Message{
		{Source: "bob", Destination: "alice", Text: "hello"},
		{Source: "carol", Destination: "alice", Text: "hey"},
	}}
	s := newServer(&fakeUsers{}, fc)

	stream := &fakeMsgStream{ctx: authedCtx("alice")}
	if err := s.MessageStream(&pb.StreamRequest{}, stream); err != nil {
		t.Fatalf("MessageStream error: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(stream.sent))
	}
	if stream.sent[0].SrcUsername != "bob" || stream.sent[0].Text != "hello" {
		t.Errorf("unexpected first frame: %+v", stream.sent[0])
	}
}

func TestMessageStream_Superseded(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{streamErr: common.ErrSessionSuperseded})

	err := s.MessageStream(&pb.StreamRequest{}, &fakeMsgStream{ctx: authedCtx("alice")})
	wantCode(t, err, codes.Aborted)
}

func TestMessageStream_ClientGone(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{streamErr: context.Canceled})

	if err := s.MessageStream(&pb.StreamRequest{}, &fakeMsgStream{ctx: authedCtx("alice")}); err != nil {
		t.Fatalf("expected nil for canceled client, got %v", err)
	}
}

func TestMessageStream_NoIdentity(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{})

	err := s.MessageStream(&pb.StreamRequest{}, &fakeMsgStream{ctx: context.Background()})
	wantCode(t, err, codes.Unauthenticated)
}

var errBoom = errors.New("boom")

func TestStatusFromError_Internal(t *testing.T) {
	wantCode(t, statusFromError(errBoom), codes.Internal)
}
