package rabbitmq

import "io"

func (p *Publisher) SetConnection(conn io.Closer) {
	p.conn = conn
}
