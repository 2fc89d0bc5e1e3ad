package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/identcore/internal/client/client"
	"github.com/dmitrijs2005/identcore/internal/common"
	pb "github.com/dmitrijs2005/identcore/internal/proto"
	"github.com/dmitrijs2005/identcore/internal/timex"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (a *App) Register(ctx context.Context) error {
	req := &pb.RegisterRequest{}
	var err error

	if req.Username, err = GetSimpleText(a.reader, "Enter username", a.out); err != nil {
		return a.fail(err)
	}
	provider, err := GetSimpleText(a.reader, "Enter provider (email, phone, google, github, apple, linkedin) [email]", a.out)
	if err != nil {
		return a.fail(err)
	}
	if provider == "" {
		provider = "email"
	}
	req.Providers = []string{provider}

	switch strings.ToLower(provider) {
	case "email":
		if req.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
			return a.fail(err)
		}
	case "phone":
		if req.Phone, err = GetSimpleText(a.reader, "Enter phone", a.out); err != nil {
			return a.fail(err)
		}
	}
	if strings.EqualFold(provider, "email") || strings.EqualFold(provider, "phone") {
		if req.Password, err = GetPassword(a.out); err != nil {
			return a.fail(err)
		}
	}
	if req.Url, err = GetSimpleText(a.reader, "Enter profile url", a.out); err != nil {
		return a.fail(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	account, err := a.client.Register(ctx, req)
	if err != nil {
		return a.fail(err)
	}

	a.remember(ctx, account.GetUsername())
	printlnFn("Registered as", account.GetUsername())
	return nil
}

func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter username, email or phone", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	account, err := a.client.SignIn(ctx, identifier, password)
	if err != nil {
		return a.fail(err)
	}

	a.remember(ctx, account.GetUsername())
	printlnFn("Login successful")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	account, err := a.client.AccountDetail(ctx)
	if err != nil {
		if common.KindOf(err) == common.KindUnauthorized {
			a.forget(ctx)
		}
		return a.fail(err)
	}

	for _, line := range describeAccount(account) {
		printlnFn(line)
	}
	return nil
}

func (a *App) Update(ctx context.Context) error {
	fields, err := GetFields(a.reader, a.out)
	if err != nil {
		return a.fail(err)
	}
	if len(fields) == 0 {
		printlnFn("Nothing to update")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.UpdateProfile(ctx, fields)
	if err != nil {
		return a.fail(err)
	}

	printlnFn(resp.GetMessage())

	// Tokens are bound to the username; a rename comes with a new one.
	switch {
	case resp.GetSessionToken() != "":
		a.remember(ctx, resp.GetName())
		printlnFn("Username changed to", resp.GetName())
	case a.userName != "" && resp.GetName() != a.userName:
		a.forget(ctx)
		printlnFn("Username changed to", resp.GetName()+"; please log in again")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	message, err := a.client.SignOut(ctx)
	if err != nil && common.KindOf(err) != common.KindUnauthorized {
		return a.fail(err)
	}

	a.forget(ctx)
	if message == "" {
		message = "Signed out."
	}
	printlnFn(message)
	return nil
}

func (a *App) fail(err error) error {
	printlnFn("Error:", describeError(err))
	return err
}

func describeError(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "server unavailable"
	}
	if typed := common.As(err); typed != nil {
		if typed.Reason() != "" {
			return fmt.Sprintf("%s (%s): %s", typed.Kind(), typed.Reason(), typed.Message())
		}
		return fmt.Sprintf("%s: %s", typed.Kind(), typed.Message())
	}
	return err.Error()
}

func describeAccount(a *pb.Account) []string {
	lines := []string{
		"id:          " + a.GetId(),
		"username:    " + a.GetUsername(),
		"providers:   " + strings.Join(a.GetProviders(), ","),
		fmt.Sprintf("verified:    %d", a.GetIsVerified()),
	}
	optional := []struct{ label, value string }{
		{"email:       ", a.GetEmail()},
		{"phone:       ", a.GetPhone()},
		{"name:        ", strings.TrimSpace(a.GetFirstname() + " " + a.GetLastname())},
		{"url:         ", a.GetUrl()},
		{"avatar:      ", a.GetAvatar()},
		{"ip address:  ", a.GetIpAddress()},
		{"last login:  ", formatTimestamp(a.GetLastLogin())},
	}
	for _, o := range optional {
		if o.value != "" {
			lines = append(lines, o.label+o.value)
		}
	}
	if metadata := a.GetMetadata().AsMap(); len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("metadata.%s: %v", k, metadata[k]))
		}
	}
	return append(lines,
		"created at:  "+formatTimestamp(a.GetCreatedAt()),
		"updated at:  "+formatTimestamp(a.GetUpdatedAt()),
	)
}

func formatTimestamp(ts *timestamppb.Timestamp) string {
	t, ok := timex.NormalizeTime(ts)
	if !ok {
		return ""
	}
	return timex.FormatTime(t)
}
