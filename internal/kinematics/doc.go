// Package kinematics computes the forward kinematics of a planar
// three-link open chain.
//
// Joint angles are relative: each angle is measured from the orientation
// of the preceding link, so link i points along the cumulative angle
// θ1+…+θi. The package is pure; [Forward] has no side effects and holds no
// state.
//
//   - [JointState]: lengths (m), angles (deg) and angular velocities (rad/s)
//   - [Output]: end-effector position, heading and velocity
//   - [Chain]: positions of every joint, for drawing the pose
//
// # Example
//
//	out := kinematics.Forward(kinematics.Defaults())
//	fmt.Printf("%.3f %.3f %g\n", out.X, out.Y, out.Heading)
package kinematics
