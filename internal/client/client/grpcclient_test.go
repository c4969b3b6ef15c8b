package client

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/mbaklanov/chatline/internal/common"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// fakeChatClient implements pb.ChatServiceClient for wrapper tests.
type fakeChatClient struct {
	loginResp   *pb.LoginResponse
	loginErr    error
	refreshResp *pb.LoginResponse
	refreshErr  error
	listResp    *pb.ListUsersResponse
	sendResp    *pb.SendMessageResponse
	sendErr     error
	stream      grpc.ServerStreamingClient[pb.ChatMessage]
	streamErr   error

	refreshCalls int
}

func (f *fakeChatClient) CreateAccount(ctx context.Context, in *pb.Credentials, opts ...grpc.CallOption) (*pb.Response, error) {
	return &pb.Response{Status: true}, nil
}
func (f *fakeChatClient) Login(ctx context.Context, in *pb.Credentials, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeChatClient) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.refreshCalls++
	return f.refreshResp, f.refreshErr
}
func (f *fakeChatClient) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	return f.listResp, nil
}
func (f *fakeChatClient) SendMessage(ctx context.Context, in *pb.SendMessageRequest, opts ...grpc.CallOption) (*pb.SendMessageResponse, error) {
	return f.sendResp, f.sendErr
}
func (f *fakeChatClient) DeleteAccount(ctx context.Context, in *pb.DeleteAccountRequest, opts ...grpc.CallOption) (*pb.Response, error) {
	return &pb.Response{Status: true}, nil
}
func (f *fakeChatClient) MessageStream(ctx context.Context, in *pb.StreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.ChatMessage], error) {
	return f.stream, f.streamErr
}

// fakeRecvStream feeds a fixed sequence of messages, then an error.
type fakeRecvStream struct {
	grpc.ClientStream
	msgs   []*pb.ChatMessage
	forced error
}

func (f *fakeRecvStream) Recv() (*pb.ChatMessage, error) {
	if len(f.msgs) == 0 {
		if f.forced != nil {
			return nil, f.forced
		}
		return nil, io.EOF
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func TestLogin_StoresTokens(t *testing.T) {
	fc := &fakeChatClient{loginResp: &pb.LoginResponse{Status: true, AccessToken: "at", RefreshToken: "rt"}}
	c := &GRPCClient{client: fc}

	if err := c.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if c.Username() != "alice" || c.accessToken != "at" || c.refreshToken != "rt" {
		t.Errorf("unexpected state: %q %q %q", c.username, c.accessToken, c.refreshToken)
	}

	c.Logout()
	if c.Username() != "" || c.accessToken != "" || c.refreshToken != "" {
		t.Error("expected cleared state after logout")
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	fc := &fakeChatClient{loginErr: status.Error(codes.Unauthenticated, "wrong credential")}
	c := &GRPCClient{client: fc}

	if err := c.Login(context.Background(), "alice", "nope"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSendMessage_Queued(t *testing.T) {
	fc := &fakeChatClient{sendResp: &pb.SendMessageResponse{Status: true, Queued: true}}
	c := &GRPCClient{client: fc}

	queued, err := c.SendMessage(context.Background(), "bob", "hi")
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if !queued {
		t.Error("expected queued true")
	}
}

func TestSendMessage_UnknownDestination(t *testing.T) {
	fc := &fakeChatClient{sendErr: status.Error(codes.NotFound, "unknown destination")}
	c := &GRPCClient{client: fc}

	if _, err := c.SendMessage(context.Background(), "ghost", "hi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListen_DeliversUntilEOF(t *testing.T) {
	fc := &fakeChatClient{stream: &fakeRecvStream{msgs: []*pb.ChatMessage{
		{SrcUsername: "bob", Text: "one"},
		{SrcUsername: "bob", Text: "two"},
	}}}
	c := &GRPCClient{client: fc}

	var got []string
	err := c.Listen(context.Background(), func(src, text string) {
		got = append(got, src+":"+text)
	})
	if err != nil {
		t.Fatalf("Listen error: %v", err)
	}
	if len(got) != 2 || got[0] != "bob:one" || got[1] != "bob:two" {
		t.Errorf("unexpected deliveries: %v", got)
	}
}

func TestAccessTokenInterceptor_RefreshesOnce(t *testing.T) {
	fc := &fakeChatClient{refreshResp: &pb.LoginResponse{Status: true, AccessToken: "at2", RefreshToken: "rt2"}}
	c := &GRPCClient{client: fc, accessToken: "at1", refreshToken: "rt1"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++

		md, _ := metadata.FromOutgoingContext(ctx)
		tokens := md.Get(common.AccessTokenHeaderName)
		if len(tokens) != 1 {
			t.Fatalf("expected one access token in metadata, got %v", tokens)
		}

		if calls == 1 {
			if tokens[0] != "at1" {
				t.Errorf("first call: expected at1, got %q", tokens[0])
			}
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		if tokens[0] != "at2" {
			t.Errorf("retry: expected at2, got %q", tokens[0])
		}
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/chatline.ChatService/SendMessage", nil, nil, nil, invoker)
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 invocations, got %d", calls)
	}
	if fc.refreshCalls != 1 {
		t.Errorf("expected 1 refresh call, got %d", fc.refreshCalls)
	}
	if c.accessToken != "at2" || c.refreshToken != "rt2" {
		t.Errorf("tokens not rotated: %q %q", c.accessToken, c.refreshToken)
	}
}

func TestAccessTokenInterceptor_OtherErrorsPassThrough(t *testing.T) {
	fc := &fakeChatClient{}
	c := &GRPCClient{client: fc, accessToken: "at1", refreshToken: "rt1"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		return status.Error(codes.NotFound, "unknown destination")
	}

	err := c.accessTokenInterceptor(context.Background(), "/chatline.ChatService/SendMessage", nil, nil, nil, invoker)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound passthrough, got %v", err)
	}
	if calls != 1 || fc.refreshCalls != 0 {
		t.Errorf("expected no retry and no refresh, got calls=%d refreshes=%d", calls, fc.refreshCalls)
	}
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	cases := []struct {
		in   error
		want error
	}{
		{status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{status.Error(codes.NotFound, "x"), ErrNotFound},
		{status.Error(codes.AlreadyExists, "x"), ErrAlreadyExists},
		{status.Error(codes.InvalidArgument, "x"), ErrInvalidInput},
		{status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
	}
	for _, tc := range cases {
		if got := c.mapError(tc.in); !errors.Is(got, tc.want) {
			t.Errorf("mapError(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
	if c.mapError(nil) != nil {
		t.Error("mapError(nil) must be nil")
	}
}
