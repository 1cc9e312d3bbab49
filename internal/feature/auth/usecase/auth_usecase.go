// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"fitness_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、
// 作成されたユーザーと署名済みトークンを返します。
// メール形式やパスワード強度の検証は行いません。空チェックはトランスポート層の責務です。
func (u *authUsecase) Register(ctx context.Context, email, password, name string) (*entity.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed), Name: name}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// メール未登録とパスワード不一致はどちらもErrInvalidCredentialsになります。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}

// VerifyUser はトークンのsubjectから解決したユーザーIDでユーザーを取得します。
// 認証ゲートの最終段で、トークンが指すユーザーが今も存在することを確認します。
func (u *authUsecase) VerifyUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
