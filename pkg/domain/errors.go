package domain

import "errors"

// ディスパッチャーが外部へ公開する安定したエラー分類です。
// 呼び出し側は errors.Is でこれらの番兵値と照合して分岐します。
// 個々のラップメッセージはそのまま表示できる文面を持ちます。
var (
	// ErrConfiguration はクライアント構築時に資格情報が欠落している場合のエラーです。
	ErrConfiguration = errors.New("configuration error")
	// ErrMissingInput は選択モデルに必須の入力が欠けている場合のエラーです。
	// ネットワーク呼び出しの前に返されます。
	ErrMissingInput = errors.New("missing input")
	// ErrBlocked はリモートサービスが生成を拒否した場合のエラーです。
	// プロバイダーの提示した理由を保持し、自動リトライしてはいけません。
	ErrBlocked = errors.New("generation blocked")
	// ErrRateLimited はレート制限・クォータ枯渇による一時的な失敗です。
	// バックオフして再試行するかどうかは呼び出し側の責務です。
	ErrRateLimited = errors.New("rate limited")
	// ErrInvalidCredentials は呼び出し時にサービス側が資格情報を拒否した場合の
	// エラーです。構築時の欠落 (ErrConfiguration) とは区別されます。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknown は上記に分類できないあらゆる失敗を包む受け皿です。
	ErrUnknown = errors.New("generation failed")

	// ErrNoImage は応答に画像が含まれていなかった場合にアダプターが返す
	// 内部エラーです。ディスパッチャー境界で ErrUnknown に集約されます。
	ErrNoImage = errors.New("no image produced")
)
