package http

import "html/template"

const lobbyTemplateName = "lobby.html"

var lobbyTemplate = template.Must(template.New(lobbyTemplateName).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Lobby</title></head>
<body>
<form id="lobby-form" data-action-type="{{.ActionType}}">
  <input type="text" name="room" placeholder="Room name" required>
  <button type="submit">{{if eq .ActionType "host"}}Host room{{else}}Join room{{end}}</button>
</form>
</body>
</html>
`))
