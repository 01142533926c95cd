package main

import (
	"context"
	"fmt"
)

// notify never ends the dialogue: on a delivery failure it reports the students notified so far.
func (cli *commandLine) notify(ctx context.Context) error {
	count, err := cli.notifier.Scan(ctx)
	if err != nil {
		// the students already notified stay notified
		cli.logger.Error(fmt.Sprintf("notifying students: %v", err), err)
		cli.printf("Could not send notifications: %v\n", err)
	}
	cli.printf("Total %d students have been notified.\n", count)
	return nil
}
