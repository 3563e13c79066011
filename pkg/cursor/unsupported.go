package cursor

// The methods below complete the mocked result-set interface. They are not
// implemented and always return ErrUnsupportedOperation. Wrap the Cursor in
// a type of your own to provide them.

func (c *Cursor) CopyStringToBuffer(col int, buf *[]rune) error {
	return notImplemented("CopyStringToBuffer(int, *[]rune)")
}

func (c *Cursor) Deactivate() error {
	return notImplemented("Deactivate()")
}

func (c *Cursor) Requery() (bool, error) {
	return false, notImplemented("Requery()")
}

func (c *Cursor) RegisterContentObserver(o any) error {
	return notImplemented("RegisterContentObserver(any)")
}

func (c *Cursor) UnregisterContentObserver(o any) error {
	return notImplemented("UnregisterContentObserver(any)")
}

func (c *Cursor) SetNotificationURI(resolver any, uri string) error {
	return notImplemented("SetNotificationURI(any, string)")
}

func (c *Cursor) NotificationURI() (string, error) {
	return "", notImplemented("NotificationURI()")
}

func (c *Cursor) WantsAllOnMoveCalls() (bool, error) {
	return false, notImplemented("WantsAllOnMoveCalls()")
}

func (c *Cursor) SetExtras(extras map[string]any) error {
	return notImplemented("SetExtras(map[string]any)")
}

func (c *Cursor) Extras() (map[string]any, error) {
	return nil, notImplemented("Extras()")
}

func (c *Cursor) Respond(extras map[string]any) (map[string]any, error) {
	return nil, notImplemented("Respond(map[string]any)")
}
