package appwritefake

import (
	"encoding/json"
	"maps"
	"net/http"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/appwrite"

	"github.com/labstack/echo/v4"
)

func accountJSON(a *entity.Account) map[string]any {
	return map[string]any{
		"$id":        a.ID,
		"$createdAt": timestamp(a.CreatedAt),
		"$updatedAt": timestamp(a.CreatedAt),
		"name":       a.Name,
		"email":      a.Email,
		"status":     true,
	}
}

func (s *Server) createAccount(c echo.Context) error {
	var req struct {
		UserID   string `json:"userId"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return remoteError(http.StatusBadRequest, "general_argument_invalid", err.Error())
	}

	account, err := s.backend.CreateAccount(c.Request().Context(), req.UserID, req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, accountJSON(account))
}

func (s *Server) getAccount(c echo.Context) error {
	account, err := s.backend.GetAccount(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountJSON(account))
}

func (s *Server) createSession(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return remoteError(http.StatusBadRequest, "general_argument_invalid", err.Error())
	}

	session, err := s.backend.CreateSession(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.secrets[session.Secret] = session.ID
	s.mu.Unlock()

	body := map[string]any{
		"$id":        session.ID,
		"$createdAt": timestamp(session.ExpiresAt.AddDate(-1, 0, 0)),
		"userId":     session.AccountID,
		"expire":     timestamp(session.ExpiresAt),
		"provider":   "email",
		"current":    true,
		"secret":     "",
	}

	cookieName := "a_session_" + s.opts.ProjectID
	switch s.opts.Delivery {
	case DeliverBody:
		body["secret"] = session.Secret
	case DeliverFallbackHeader:
		raw, err := json.Marshal(map[string]string{cookieName: session.Secret})
		if err != nil {
			return err
		}
		c.Response().Header().Set(appwrite.HeaderFallbackCookie, string(raw))
	default:
		c.SetCookie(&http.Cookie{
			Name:     cookieName,
			Value:    session.Secret,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
		})
	}

	return c.JSON(http.StatusCreated, body)
}

func (s *Server) deleteSession(c echo.Context) error {
	secret := c.Request().Header.Get(appwrite.HeaderSession)
	sessionID := c.Param("sessionId")

	s.mu.Lock()
	current := s.secrets[secret]
	s.mu.Unlock()
	if sessionID == gateway.CurrentSession {
		sessionID = current
	}

	if err := s.backend.DeleteSession(c.Request().Context(), sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	for k, v := range s.secrets {
		if v == sessionID {
			delete(s.secrets, k)
		}
	}
	s.mu.Unlock()

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) documentJSON(c echo.Context, doc *gateway.Document) (map[string]any, error) {
	out := make(map[string]any)
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, &out); err != nil {
			return nil, err
		}
	}
	maps.Copy(out, map[string]any{
		"$id":           doc.ID,
		"$collectionId": c.Param("collectionId"),
		"$databaseId":   s.opts.DatabaseID,
		"$createdAt":    timestamp(doc.CreatedAt),
		"$updatedAt":    timestamp(doc.UpdatedAt),
		"$permissions":  []string{},
	})

	return out, nil
}

func (s *Server) respondDocument(c echo.Context, status int, doc *gateway.Document) error {
	out, err := s.documentJSON(c, doc)
	if err != nil {
		return err
	}

	return c.JSON(status, out)
}

type documentRequest struct {
	DocumentID string         `json:"documentId"`
	Data       map[string]any `json:"data"`
}

func (s *Server) createDocument(c echo.Context) error {
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return remoteError(http.StatusBadRequest, "document_invalid_structure", err.Error())
	}

	doc, err := s.backend.CreateDocument(c.Request().Context(), s.collection(c), req.DocumentID, req.Data)
	if err != nil {
		return err
	}

	return s.respondDocument(c, http.StatusCreated, doc)
}

func (s *Server) getDocument(c echo.Context) error {
	doc, err := s.backend.GetDocument(c.Request().Context(), s.collection(c), c.Param("documentId"))
	if err != nil {
		return err
	}

	return s.respondDocument(c, http.StatusOK, doc)
}

func (s *Server) listDocuments(c echo.Context) error {
	query, err := appwrite.DecodeQuery(c.QueryParams()[appwrite.QueryParam])
	if err != nil {
		return remoteError(http.StatusBadRequest, "general_query_invalid", err.Error())
	}

	list, err := s.backend.ListDocuments(c.Request().Context(), s.collection(c), query)
	if err != nil {
		return err
	}

	documents := make([]map[string]any, 0, len(list.Documents))
	for _, doc := range list.Documents {
		out, err := s.documentJSON(c, doc)
		if err != nil {
			return err
		}
		documents = append(documents, out)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":     list.Total,
		"documents": documents,
	})
}

func (s *Server) updateDocument(c echo.Context) error {
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return remoteError(http.StatusBadRequest, "document_invalid_structure", err.Error())
	}

	doc, err := s.backend.UpdateDocument(c.Request().Context(), s.collection(c), c.Param("documentId"), req.Data)
	if err != nil {
		return err
	}

	return s.respondDocument(c, http.StatusOK, doc)
}

func (s *Server) deleteDocument(c echo.Context) error {
	if err := s.backend.DeleteDocument(c.Request().Context(), s.collection(c), c.Param("documentId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) uploadFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return remoteError(http.StatusBadRequest, "storage_invalid_file", err.Error())
	}
	body, err := header.Open()
	if err != nil {
		return err
	}
	defer body.Close()

	file, err := s.backend.UploadFile(c.Request().Context(), c.FormValue("fileId"), gateway.FileUpload{
		Name:     header.Filename,
		MimeType: header.Header.Get(echo.HeaderContentType),
		Size:     header.Size,
		Body:     body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"$id":          file.ID,
		"bucketId":     s.opts.BucketID,
		"$createdAt":   timestamp(file.CreatedAt),
		"$updatedAt":   timestamp(file.CreatedAt),
		"name":         file.Name,
		"mimeType":     file.MimeType,
		"sizeOriginal": file.SizeBytes,
	})
}

func (s *Server) deleteFile(c echo.Context) error {
	if err := s.backend.DeleteFile(c.Request().Context(), c.Param("fileId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
