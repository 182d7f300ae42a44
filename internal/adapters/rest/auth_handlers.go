package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

// DefaultOAuthScope - права, запрашиваемые CMS-редактором по умолчанию.
const DefaultOAuthScope = "repo,user"

type AuthHandler struct {
	exchangeUC  usecases_port.ExchangeTokenUseCase
	redirectURI string
}

// NewAuthHandler создает обработчик OAuth-коллбэка. redirectURI - полный
// адрес этого же эндпоинта, на который GitHub вернет пользователя.
func NewAuthHandler(exchangeUC usecases_port.ExchangeTokenUseCase, redirectURI string) *AuthHandler {
	return &AuthHandler{
		exchangeUC:  exchangeUC,
		redirectURI: redirectURI,
	}
}

// Callback обрабатывает GET /auth/callback.
// Первый заход от CMS-редактора приходит без кода - редиректим на GitHub.
// Возврат от GitHub несет code - обмениваем его на токен и отдаем
// HTML-документ, ретранслирующий токен окну-инициатору через postMessage.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	code := query.Get("code")
	provider := query.Get("provider")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "AuthCallback",
		"provider": provider,
	})

	if provider == "github" && code == "" {
		scope := query.Get("scope")
		if scope == "" {
			scope = DefaultOAuthScope
		}
		authorizeURL := h.exchangeUC.AuthorizeURL(h.redirectURI, scope)
		handlerLogger.Info("Redirecting to provider authorize page", nil)
		http.Redirect(w, r, authorizeURL, http.StatusFound)
		return
	}

	if code == "" {
		handlerLogger.Warn("No authorization code provided", nil)
		WriteJSONError(w, http.StatusBadRequest, "No authorization code provided")
		return
	}

	handlerLogger.Debug("Exchanging authorization code", nil)

	token, err := h.exchangeUC.Execute(r.Context(), provider, code)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handlerLogger.Warn("Provider rejected the exchange", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "GitHub OAuth error")
			return
		}
		respondDomainError(w, handlerLogger, err, "Authentication failed")
		return
	}

	payload, err := json.Marshal(token)
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Authentication failed")
		return
	}

	handlerLogger.Info("Token exchanged, relaying to opener window", nil)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, relayDocument(string(payload)))
}

// relayDocument строит страницу, передающую токен окну CMS-редактора
// через cross-document message. Протокол сообщений задан Decap CMS:
// сначала "authorizing:github", затем "authorization:github:success:<json>".
func relayDocument(tokenJSON string) string {
	return `<!DOCTYPE html>
<html>
<head>
  <title>Authenticating...</title>
</head>
<body>
  <script>
    (function() {
      function receiveMessage(e) {
        window.opener.postMessage(
          'authorization:github:success:` + tokenJSON + `',
          e.origin
        );
        window.removeEventListener("message", receiveMessage, false);
      }
      window.addEventListener("message", receiveMessage, false);
      window.opener.postMessage("authorizing:github", "*");
    })()
  </script>
</body>
</html>`
}
